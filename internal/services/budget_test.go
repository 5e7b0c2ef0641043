package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yishak-cs/campus-meals/internal/models"
)

func TestRemainingEmptySelectionLeavesGoals(t *testing.T) {
	got := Remaining(models.Goals{Balance: ptr(20)}, models.NewSelectionSet(), smallCatalog())

	require.NotNil(t, got.Balance)
	assert.Equal(t, 20.0, *got.Balance)
	assert.Nil(t, got.Calories)
	assert.Nil(t, got.Protein)
	assert.Nil(t, got.Fat)
}

func TestRemainingAbsentGoalStaysAbsent(t *testing.T) {
	// id 1 is a1: $5, 400 kcal
	got := Remaining(models.Goals{Balance: ptr(20), Calories: nil}, models.NewSelectionSet(1), smallCatalog())

	require.NotNil(t, got.Balance)
	assert.Equal(t, 15.0, *got.Balance)
	assert.Nil(t, got.Calories)
}

func TestRemainingSubtractsEveryQuantity(t *testing.T) {
	goals := models.Goals{Balance: ptr(20), Calories: ptr(2000), Protein: ptr(100), Fat: ptr(60)}
	// b1 ($7.49) and c1 ($6.99)
	got := Remaining(goals, models.NewSelectionSet(3, 4), smallCatalog())

	assert.Equal(t, 5.52, *got.Balance)
	assert.Equal(t, 1300.0, *got.Calories)
	assert.Equal(t, 50.0, *got.Protein)
	assert.Equal(t, 45.0, *got.Fat)
}

func TestRemainingUnknownIDsContributeZero(t *testing.T) {
	goals := models.Goals{Balance: ptr(20), Calories: ptr(2000), Protein: ptr(100), Fat: ptr(60)}
	got := Remaining(goals, models.NewSelectionSet(999, -1), smallCatalog())

	assert.Equal(t, 20.0, *got.Balance)
	assert.Equal(t, 2000.0, *got.Calories)
	assert.Equal(t, 100.0, *got.Protein)
	assert.Equal(t, 60.0, *got.Fat)
}

func TestRemainingCanGoNegative(t *testing.T) {
	goals := models.Goals{Balance: ptr(10), Calories: ptr(500)}
	got := Remaining(goals, models.NewSelectionSet(1, 3), smallCatalog())

	assert.Equal(t, -2.49, *got.Balance)
	assert.Equal(t, -330.0, *got.Calories)
}

func TestRemainingNilSelectionAndCatalog(t *testing.T) {
	got := Remaining(models.Goals{Fat: ptr(60)}, nil, nil)
	assert.Equal(t, 60.0, *got.Fat)
}
