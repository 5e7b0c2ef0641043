package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/models"
	"github.com/yishak-cs/campus-meals/internal/services"
)

// APIHandler handles all meal planning requests
type APIHandler struct {
	recommendationService *services.RecommendationService
	log                   *logger.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(recommendationService *services.RecommendationService, log *logger.Logger) *APIHandler {
	return &APIHandler{
		recommendationService: recommendationService,
		log:                   log.With("handler", "APIHandler"),
	}
}

// SetupRoutes configures all /api routes behind the given middleware
func (h *APIHandler) SetupRoutes(router *gin.Engine, middleware ...gin.HandlerFunc) {
	api := router.Group("/api", middleware...)
	{
		api.GET("/restaurants", h.ListRestaurants)
		api.GET("/restaurants/:name/items", h.GetRestaurantItems)
		api.GET("/recommendations", h.GetRecommendations)
		api.POST("/rank", h.RankItems)
		api.POST("/budget", h.ComputeRemaining)
		api.POST("/catalog/reload", h.ReloadCatalog)
	}
}

// ListRestaurants handles the searchable restaurant directory
func (h *APIHandler) ListRestaurants(c *gin.Context) {
	query := c.Query("q")
	restaurants := h.recommendationService.Directory(query)

	c.JSON(http.StatusOK, gin.H{
		"query":       query,
		"restaurants": restaurants,
		"count":       len(restaurants),
	})
}

// GetRestaurantItems handles requests for one restaurant's full menu
func (h *APIHandler) GetRestaurantItems(c *gin.Context) {
	name := c.Param("name")

	items, err := h.recommendationService.RestaurantItems(name)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		h.log.Error("Error getting restaurant items", "restaurant", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get restaurant items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": name,
		"items":      items,
	})
}

// GetRecommendations samples one item per restaurant, ranks them and reports
// what is left of the user's goals after the current selection.
func (h *APIHandler) GetRecommendations(c *gin.Context) {
	goals, err := models.ParseGoals(c.Query("balance"), c.Query("calories"), c.Query("protein"), c.Query("fat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selected, err := models.ParseSelection(c.Query("selected"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := services.RecommendRequest{Goals: goals, Selected: selected}

	if raw := c.Query("sort"); raw != "" {
		key, err := services.ParseSortKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.SortKey = key
	}

	if raw := c.Query("desc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid desc flag"})
			return
		}
		req.Descending = desc
	}

	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seed"})
			return
		}
		req.Seed = &seed
	}

	c.JSON(http.StatusOK, h.recommendationService.Recommend(req))
}

type rankRequest struct {
	Items      []models.MenuItem `json:"items"`
	Sort       string            `json:"sort" binding:"required"`
	Descending bool              `json:"descending"`
}

// RankItems sorts a client-held list by the requested metric
func (h *APIHandler) RankItems(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	key, err := services.ParseSortKey(req.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ranked := services.Rank(req.Items, key, req.Descending)
	c.JSON(http.StatusOK, gin.H{
		"sort":       key,
		"descending": req.Descending,
		"items":      ranked,
		"groups":     services.GroupByRestaurant(ranked),
	})
}

type budgetRequest struct {
	Goals    models.Goals `json:"goals"`
	Selected []int        `json:"selected"`
}

// ComputeRemaining subtracts the selected items from the user's goals
func (h *APIHandler) ComputeRemaining(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	remaining, version := h.recommendationService.Remaining(req.Goals, models.NewSelectionSet(req.Selected...))
	c.JSON(http.StatusOK, gin.H{
		"catalog_version": version,
		"goals":           req.Goals,
		"remaining":       remaining,
	})
}

// ReloadCatalog re-reads the menu datasets and swaps in the new catalog
func (h *APIHandler) ReloadCatalog(c *gin.Context) {
	snap, err := h.recommendationService.Reload()
	if err != nil {
		h.log.Error("Catalog reload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "reloaded",
		"catalog": snap.Info(),
	})
}

