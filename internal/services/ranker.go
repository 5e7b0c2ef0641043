package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/yishak-cs/campus-meals/internal/models"
)

type metric func(models.MenuItem) float64

func calories(i models.MenuItem) float64 { return i.Calories }
func protein(i models.MenuItem) float64  { return i.Protein }
func fat(i models.MenuItem) float64      { return i.Fat }

// keyOrder is the comparison order for each primary key
var keyOrder = map[models.SortKey][]metric{
	models.SortByCalories: {calories, protein, fat},
	models.SortByProtein:  {protein, calories, fat},
	models.SortByFat:      {fat, calories, protein},
}

// ParseSortKey accepts "calories", "protein" or "fat" in any case
func ParseSortKey(raw string) (models.SortKey, error) {
	key := models.SortKey(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := keyOrder[key]; !ok {
		return "", fmt.Errorf("unknown sort key %q", raw)
	}
	return key, nil
}

// Rank returns a stably sorted copy of items ordered by key, then the
// remaining two metrics. descending flips every level.
func Rank(items []models.MenuItem, key models.SortKey, descending bool) []models.MenuItem {
	order, ok := keyOrder[key]
	if !ok {
		order = keyOrder[models.SortByCalories]
	}

	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b models.MenuItem) int {
		for _, m := range order {
			c := cmp.Compare(m(a), m(b))
			if c == 0 {
				continue
			}
			if descending {
				return -c
			}
			return c
		}
		return 0
	})
	return ranked
}

// GroupByRestaurant groups ranked items by restaurant in order of first
// appearance, keeping the ranked order inside each group.
func GroupByRestaurant(items []models.MenuItem) []models.RestaurantGroup {
	groups := []models.RestaurantGroup{}
	index := make(map[string]int)
	for _, item := range items {
		idx, ok := index[item.RestaurantName]
		if !ok {
			idx = len(groups)
			index[item.RestaurantName] = idx
			groups = append(groups, models.RestaurantGroup{
				RestaurantName: item.RestaurantName,
				LogoRef:        item.LogoRef,
			})
		}
		groups[idx].Items = append(groups[idx].Items, item)
	}
	return groups
}
