package catalog

import (
	"strings"

	"github.com/yishak-cs/campus-meals/internal/models"
)

// Catalog is the merged, normalized set of menu items for one load.
// It has no mutators; a reload builds a new Catalog.
type Catalog struct {
	restaurants []restaurant
	byName      map[string]int
	byID        map[int]models.MenuItem
}

type restaurant struct {
	name    string
	logoRef string
	items   []models.MenuItem
}

// Load merges restaurant datasets into a catalog.
// Ids start at 1 and increase across the whole load. Records that share a
// restaurant name are merged in input order; records without a name are dropped.
func Load(records []models.RestaurantRecord, logos *LogoTable) *Catalog {
	c := &Catalog{
		byName: make(map[string]int),
		byID:   make(map[int]models.MenuItem),
	}

	nextID := 1
	for _, rec := range records {
		name := strings.TrimSpace(rec.Restaurant)
		if name == "" {
			continue
		}

		idx, ok := c.byName[name]
		if !ok {
			idx = len(c.restaurants)
			c.byName[name] = idx
			c.restaurants = append(c.restaurants, restaurant{
				name:    name,
				logoRef: logos.Resolve(name),
			})
		}
		r := &c.restaurants[idx]

		for _, raw := range rec.Items {
			item := normalizeItem(raw, nextID, r.name, r.logoRef)
			nextID++
			r.items = append(r.items, item)
			c.byID[item.ID] = item
		}
	}

	return c
}

func normalizeItem(raw models.RawItem, id int, restaurantName, logoRef string) models.MenuItem {
	return models.MenuItem{
		ID:             id,
		RestaurantName: restaurantName,
		Name:           strings.TrimSpace(raw.Name),
		Price:          Resolve(Exact(raw.Price)),
		Calories:       Resolve(Exact(raw.CaloriesKcal), Midpoint(raw.CaloriesKcalLow, raw.CaloriesKcalHi)),
		Protein:        Resolve(Exact(raw.ProteinG), Exact(raw.ProteinGEst)),
		Fat:            Resolve(Exact(raw.FatG), Exact(raw.FatGEst)),
		LogoRef:        logoRef,
	}
}

// Item returns the item with the given id
func (c *Catalog) Item(id int) (models.MenuItem, bool) {
	if c == nil {
		return models.MenuItem{}, false
	}
	item, ok := c.byID[id]
	return item, ok
}

// Restaurant returns a copy of the items of one restaurant in dataset order
func (c *Catalog) Restaurant(name string) ([]models.MenuItem, bool) {
	if c == nil {
		return nil, false
	}
	idx, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return append([]models.MenuItem(nil), c.restaurants[idx].items...), true
}

// Groups returns every restaurant with a copy of its items, in load order
func (c *Catalog) Groups() []models.RestaurantGroup {
	if c == nil {
		return nil
	}
	groups := make([]models.RestaurantGroup, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		groups = append(groups, models.RestaurantGroup{
			RestaurantName: r.name,
			LogoRef:        r.logoRef,
			Items:          append([]models.MenuItem(nil), r.items...),
		})
	}
	return groups
}

// Items returns every item, grouped by restaurant in load order
func (c *Catalog) Items() []models.MenuItem {
	if c == nil {
		return nil
	}
	items := make([]models.MenuItem, 0, len(c.byID))
	for _, r := range c.restaurants {
		items = append(items, r.items...)
	}
	return items
}

// RestaurantCount returns the number of restaurants, including those without items
func (c *Catalog) RestaurantCount() int {
	if c == nil {
		return 0
	}
	return len(c.restaurants)
}

// ItemCount returns the number of items across all restaurants
func (c *Catalog) ItemCount() int {
	if c == nil {
		return 0
	}
	return len(c.byID)
}
