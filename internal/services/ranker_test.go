package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yishak-cs/campus-meals/internal/models"
)

func itemNames(items []models.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Name)
	}
	return out
}

func TestRankCaloriesDescendingBreaksTiesByProtein(t *testing.T) {
	items := []models.MenuItem{
		{ID: 1, Name: "low-protein", Calories: 300, Protein: 20},
		{ID: 2, Name: "high-protein", Calories: 300, Protein: 30},
		{ID: 3, Name: "big", Calories: 500, Protein: 10},
	}

	got := Rank(items, models.SortByCalories, true)
	assert.Equal(t, []string{"big", "high-protein", "low-protein"}, itemNames(got))

	got = Rank(items, models.SortByCalories, false)
	assert.Equal(t, []string{"low-protein", "high-protein", "big"}, itemNames(got))
}

func TestRankKeyOrders(t *testing.T) {
	items := []models.MenuItem{
		{Name: "a", Calories: 400, Protein: 30, Fat: 10},
		{Name: "b", Calories: 300, Protein: 30, Fat: 5},
		{Name: "c", Calories: 300, Protein: 30, Fat: 2},
		{Name: "d", Calories: 200, Protein: 10, Fat: 10},
	}

	// protein, then calories, then fat
	assert.Equal(t, []string{"d", "c", "b", "a"}, itemNames(Rank(items, models.SortByProtein, false)))
	// fat, then calories, then protein
	assert.Equal(t, []string{"c", "b", "d", "a"}, itemNames(Rank(items, models.SortByFat, false)))
	assert.Equal(t, []string{"a", "d", "b", "c"}, itemNames(Rank(items, models.SortByFat, true)))
}

func TestRankIsStableForFullTies(t *testing.T) {
	items := []models.MenuItem{
		{ID: 7, Name: "first", Calories: 300, Protein: 20, Fat: 5},
		{ID: 3, Name: "second", Calories: 300, Protein: 20, Fat: 5},
		{ID: 9, Name: "third", Calories: 300, Protein: 20, Fat: 5},
		{ID: 1, Name: "top", Calories: 900},
	}
	assert.Equal(t, []string{"first", "second", "third", "top"}, itemNames(Rank(items, models.SortByCalories, false)))
	assert.Equal(t, []string{"top", "first", "second", "third"}, itemNames(Rank(items, models.SortByCalories, true)))
}

func TestRankDoesNotMutateInputAndIsPermutation(t *testing.T) {
	items := []models.MenuItem{
		{ID: 1, Calories: 500}, {ID: 2, Calories: 100}, {ID: 3, Calories: 300},
	}
	before := append([]models.MenuItem(nil), items...)

	got := Rank(items, models.SortByCalories, false)

	assert.Equal(t, before, items)
	assert.ElementsMatch(t, items, got)
	assert.Equal(t, []int{2, 3, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey(" Protein ")
	require.NoError(t, err)
	assert.Equal(t, models.SortByProtein, key)

	_, err = ParseSortKey("price")
	assert.Error(t, err)
}

func TestGroupByRestaurantKeepsRankOrder(t *testing.T) {
	ranked := []models.MenuItem{
		{ID: 1, RestaurantName: "B", LogoRef: "b.png"},
		{ID: 2, RestaurantName: "A"},
		{ID: 3, RestaurantName: "B"},
		{ID: 4, RestaurantName: "A"},
	}

	groups := GroupByRestaurant(ranked)
	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].RestaurantName)
	assert.Equal(t, "b.png", groups[0].LogoRef)
	assert.Equal(t, []int{1, 3}, []int{groups[0].Items[0].ID, groups[0].Items[1].ID})
	assert.Equal(t, []int{2, 4}, []int{groups[1].Items[0].ID, groups[1].Items[1].ID})

	assert.NotNil(t, GroupByRestaurant(nil))
}
