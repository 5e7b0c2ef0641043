package services

import (
	"github.com/yishak-cs/campus-meals/internal/catalog"
	"github.com/yishak-cs/campus-meals/internal/models"
)

// MaxSampleRestaurants caps how many restaurants a sample draws from
const MaxSampleRestaurants = 6

// RandSource yields uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Sample picks one random item from every restaurant that has items,
// shuffles the picks and keeps at most MaxSampleRestaurants of them.
func Sample(cat *catalog.Catalog, rng RandSource) []models.MenuItem {
	groups := cat.Groups()
	picks := make([]models.MenuItem, 0, len(groups))
	for _, group := range groups {
		if len(group.Items) == 0 {
			continue
		}
		picks = append(picks, group.Items[rng.IntN(len(group.Items))])
	}

	shuffle(picks, rng)

	if len(picks) > MaxSampleRestaurants {
		picks = picks[:MaxSampleRestaurants]
	}
	return picks
}

// shuffle is a Fisher-Yates shuffle driven by rng
func shuffle(items []models.MenuItem, rng RandSource) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
