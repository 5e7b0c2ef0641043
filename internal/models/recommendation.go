package models

import "time"

// CatalogInfo describes the catalog snapshot a response was computed from
type CatalogInfo struct {
	Version     string    `json:"version"`
	LoadedAt    time.Time `json:"loaded_at"`
	Restaurants int       `json:"restaurants"`
	Items       int       `json:"items"`
}

// Recommendation is one sampled, ranked result set with remaining totals
type Recommendation struct {
	CatalogVersion string            `json:"catalog_version"`
	SortKey        SortKey           `json:"sort,omitempty"`
	Descending     bool              `json:"descending"`
	Items          []MenuItem        `json:"items"`
	Groups         []RestaurantGroup `json:"groups"`
	Goals          Goals             `json:"goals"`
	Selected       []int             `json:"selected"`
	Remaining      Remaining         `json:"remaining"`
}
