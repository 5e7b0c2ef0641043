package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yishak-cs/campus-meals/internal/models"
)

func directoryCatalog() *Catalog {
	return Load([]models.RestaurantRecord{
		{Restaurant: "Subway", Items: []models.RawItem{{Name: "A"}, {Name: "B"}}},
		{Restaurant: "The Habit Burger & Grill", Items: []models.RawItem{{Name: "C"}}},
		{Restaurant: "Oggi’s Pizza"},
		{Restaurant: "Broken Yolk Café", Items: []models.RawItem{{Name: "D"}}},
		{Restaurant: "everbowl", Items: []models.RawItem{{Name: "E"}}},
	}, NewLogoTable(nil, "default.png"))
}

func names(rows []models.RestaurantSummary) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestDirectorySortsByNameAndCountsItems(t *testing.T) {
	rows := Directory(directoryCatalog(), "")

	assert.Equal(t, []string{
		"Broken Yolk Café",
		"everbowl",
		"Oggi’s Pizza",
		"Subway",
		"The Habit Burger & Grill",
	}, names(rows))
	assert.Equal(t, 0, rows[2].ItemCount)
	assert.Equal(t, 2, rows[3].ItemCount)
	assert.Equal(t, "default.png", rows[0].LogoRef)
}

func TestDirectorySearchNormalization(t *testing.T) {
	cat := directoryCatalog()

	cases := map[string][]string{
		"oggis":            {"Oggi’s Pizza"},
		"OGGI'S":           {"Oggi’s Pizza"},
		"burger and grill": {"The Habit Burger & Grill"},
		"burger & grill":   {"The Habit Burger & Grill"},
		"yolk cafe":        {"Broken Yolk Café"},
		"  sub   ":         {"Subway"},
		"pizza place":      {},
	}
	for query, want := range cases {
		t.Run(query, func(t *testing.T) {
			assert.Equal(t, want, names(Directory(cat, query)))
		})
	}
}

func TestNormalizeSearch(t *testing.T) {
	assert.Equal(t, "the habit burger and grill", NormalizeSearch("  The Habit  Burger & Grill "))
	assert.Equal(t, "rubios coastal grill", NormalizeSearch("Rubio’s Coastal Grill"))
	assert.Equal(t, "creme brulee", NormalizeSearch("Crème Brûlée"))
}
