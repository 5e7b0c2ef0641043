package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/yishak-cs/campus-meals/internal/catalog"
	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/models"
)

// ErrRestaurantNotFound is returned when a restaurant name is not in the catalog
var ErrRestaurantNotFound = errors.New("restaurant not found")

// CatalogBuilder produces a fresh catalog; catalog.Source is the production one
type CatalogBuilder interface {
	Build(log *logger.Logger) (*catalog.Catalog, error)
}

// Snapshot is one loaded catalog plus its identity
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Catalog  *catalog.Catalog
}

// Info summarizes the snapshot for API responses
func (s *Snapshot) Info() models.CatalogInfo {
	return models.CatalogInfo{
		Version:     s.Version,
		LoadedAt:    s.LoadedAt,
		Restaurants: s.Catalog.RestaurantCount(),
		Items:       s.Catalog.ItemCount(),
	}
}

// RecommendRequest carries the inputs of one recommendation
type RecommendRequest struct {
	Goals      models.Goals
	Selected   models.SelectionSet
	SortKey    models.SortKey // empty keeps the shuffled order
	Descending bool
	Seed       *uint64 // nil draws a random seed
}

// RecommendationService serves meal recommendations from the current catalog snapshot
type RecommendationService struct {
	builder CatalogBuilder
	log     *logger.Logger

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
}

// NewRecommendationService builds the initial catalog and returns a ready service
func NewRecommendationService(builder CatalogBuilder, log *logger.Logger) (*RecommendationService, error) {
	s := &RecommendationService{
		builder: builder,
		log:     log.With("service", "RecommendationService"),
	}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the catalog snapshot currently being served
func (s *RecommendationService) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload rebuilds the catalog and swaps it in. Requests already holding the
// previous snapshot keep using it; on error the previous snapshot stays.
func (s *RecommendationService) Reload() (*Snapshot, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	cat, err := s.builder.Build(s.log)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	snap := &Snapshot{
		Version:  uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Catalog:  cat,
	}
	s.current.Store(snap)
	s.log.Info("Catalog snapshot swapped", "version", snap.Version, "restaurants", cat.RestaurantCount(), "items", cat.ItemCount())
	return snap, nil
}

// Directory lists restaurants matching query
func (s *RecommendationService) Directory(query string) []models.RestaurantSummary {
	return catalog.Directory(s.Snapshot().Catalog, query)
}

// RestaurantItems returns every item of one restaurant
func (s *RecommendationService) RestaurantItems(name string) ([]models.MenuItem, error) {
	items, ok := s.Snapshot().Catalog.Restaurant(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRestaurantNotFound, name)
	}
	return items, nil
}

// Remaining computes remaining balance and macros against the current catalog
func (s *RecommendationService) Remaining(goals models.Goals, sel models.SelectionSet) (models.Remaining, string) {
	snap := s.Snapshot()
	return Remaining(goals, sel, snap.Catalog), snap.Version
}

// Recommend samples one item per restaurant, ranks the sample and reports
// what is left of the goals after the current selection.
func (s *RecommendationService) Recommend(req RecommendRequest) *models.Recommendation {
	snap := s.Snapshot()

	items := Sample(snap.Catalog, newRand(req.Seed))
	if req.SortKey != "" {
		items = Rank(items, req.SortKey, req.Descending)
	}

	return &models.Recommendation{
		CatalogVersion: snap.Version,
		SortKey:        req.SortKey,
		Descending:     req.Descending,
		Items:          items,
		Groups:         GroupByRestaurant(items),
		Goals:          req.Goals,
		Selected:       req.Selected.IDs(),
		Remaining:      Remaining(req.Goals, req.Selected, snap.Catalog),
	}
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
