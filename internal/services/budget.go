package services

import (
	"math"

	"github.com/yishak-cs/campus-meals/internal/catalog"
	"github.com/yishak-cs/campus-meals/internal/models"
)

// Remaining subtracts the selected items from each goal.
// A goal that was never set stays nil. Ids missing from the catalog count as
// zero. Results may go negative.
func Remaining(goals models.Goals, sel models.SelectionSet, cat *catalog.Catalog) models.Remaining {
	var spent models.MenuItem
	for _, id := range sel.IDs() {
		item, ok := cat.Item(id)
		if !ok {
			continue
		}
		spent.Price += item.Price
		spent.Calories += item.Calories
		spent.Protein += item.Protein
		spent.Fat += item.Fat
	}

	return models.Remaining{
		Balance:  subtract(goals.Balance, spent.Price, roundCents),
		Calories: subtract(goals.Calories, spent.Calories, nil),
		Protein:  subtract(goals.Protein, spent.Protein, nil),
		Fat:      subtract(goals.Fat, spent.Fat, nil),
	}
}

func subtract(goal *float64, spent float64, round func(float64) float64) *float64 {
	if goal == nil {
		return nil
	}
	v := *goal - spent
	if round != nil {
		v = round(v)
	}
	return &v
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
