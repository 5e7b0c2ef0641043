package models

// MenuItem represents one purchasable item in a loaded catalog
type MenuItem struct {
	ID             int     `json:"id"`
	RestaurantName string  `json:"restaurant_name"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Fat            float64 `json:"fat"`
	LogoRef        string  `json:"logo_ref"`
}

// RawItem is a menu item as it appears in a restaurant dataset.
// Every numeric field is optional; the catalog loader decides which one wins.
type RawItem struct {
	Name            string   `json:"name"`
	Price           *float64 `json:"price,omitempty"`
	CaloriesKcal    *float64 `json:"calories_kcal,omitempty"`
	CaloriesKcalLow *float64 `json:"calories_kcal_low,omitempty"`
	CaloriesKcalHi  *float64 `json:"calories_kcal_high,omitempty"`
	ProteinG        *float64 `json:"protein_g,omitempty"`
	ProteinGEst     *float64 `json:"protein_g_est,omitempty"`
	FatG            *float64 `json:"fat_g,omitempty"`
	FatGEst         *float64 `json:"fat_g_est,omitempty"`
}

// RestaurantRecord is one restaurant dataset before normalization
type RestaurantRecord struct {
	Restaurant string    `json:"restaurant"`
	Items      []RawItem `json:"items"`
}

// RestaurantSummary is a directory row for one restaurant
type RestaurantSummary struct {
	Name      string `json:"name"`
	LogoRef   string `json:"logo_ref"`
	ItemCount int    `json:"item_count"`
}

// RestaurantGroup is a set of ranked items that belong to one restaurant
type RestaurantGroup struct {
	RestaurantName string     `json:"restaurant_name"`
	LogoRef        string     `json:"logo_ref"`
	Items          []MenuItem `json:"items"`
}

// SortKey selects the primary metric used to rank items
type SortKey string

const (
	SortByCalories SortKey = "calories"
	SortByProtein  SortKey = "protein"
	SortByFat      SortKey = "fat"
)
