package models

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Goals holds the starting budget and macro targets a user declared.
// A nil field means the user set no goal for that quantity.
type Goals struct {
	Balance  *float64 `json:"balance"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Fat      *float64 `json:"fat"`
}

// Remaining is what is left of each goal after subtracting a selection.
// A nil field is reported as null: the matching goal was never set.
type Remaining struct {
	Balance  *float64 `json:"balance"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Fat      *float64 `json:"fat"`
}

// ParseGoal parses an optional decimal string passed between screens.
// An empty or blank string is "no goal", not zero.
func ParseGoal(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(raw, "$"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid goal value %q: %w", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("invalid goal value %q: not a finite number", raw)
	}
	return &v, nil
}

// ParseGoals parses all four goal strings at once
func ParseGoals(balance, calories, protein, fat string) (Goals, error) {
	var g Goals
	var err error
	if g.Balance, err = ParseGoal(balance); err != nil {
		return Goals{}, fmt.Errorf("balance: %w", err)
	}
	if g.Calories, err = ParseGoal(calories); err != nil {
		return Goals{}, fmt.Errorf("calories: %w", err)
	}
	if g.Protein, err = ParseGoal(protein); err != nil {
		return Goals{}, fmt.Errorf("protein: %w", err)
	}
	if g.Fat, err = ParseGoal(fat); err != nil {
		return Goals{}, fmt.Errorf("fat: %w", err)
	}
	return g, nil
}

// SelectionSet is the set of item ids a user has toggled on
type SelectionSet map[int]struct{}

// NewSelectionSet builds a selection from ids; duplicates collapse
func NewSelectionSet(ids ...int) SelectionSet {
	s := make(SelectionSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Toggle flips membership of id and reports whether it is now selected
func (s SelectionSet) Toggle(id int) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// Has reports whether id is selected
func (s SelectionSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected ids in ascending order
func (s SelectionSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ParseSelection parses a comma separated id list such as "1,4,9"
func ParseSelection(raw string) (SelectionSet, error) {
	sel := NewSelectionSet()
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q: %w", part, err)
		}
		sel[id] = struct{}{}
	}
	return sel, nil
}
