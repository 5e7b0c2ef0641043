package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRestaurantsCmd(t *testing.T) {
	out, err := execute(t, "restaurants", "--query", "SUB")
	require.NoError(t, err)
	assert.Contains(t, out, "Subway")
	assert.NotContains(t, out, "Panda Express")

	out, err = execute(t, "restaurants", "-q", "nothing matches this")
	require.NoError(t, err)
	assert.Contains(t, out, "No restaurants found")
}

func TestItemsCmdRanks(t *testing.T) {
	out, err := execute(t, "items", "Subway", "--sort", "calories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 2)
	assert.Contains(t, lines[1], "Veggie Delite")
	assert.Contains(t, lines[2], "Oven Roasted Turkey")

	_, err = execute(t, "items", "Nowhere")
	assert.ErrorContains(t, err, "restaurant not found")

	_, err = execute(t, "items", "Subway", "--sort", "price")
	assert.Error(t, err)
}

func TestSampleCmd(t *testing.T) {
	first, err := execute(t, "sample", "--seed", "42", "--sort", "protein", "--desc", "--balance", "20", "--fat", "30")
	require.NoError(t, err)
	assert.Contains(t, first, "Balance: $20.00")
	assert.Contains(t, first, "Calories: -")
	assert.Contains(t, first, "Fat: 30g")

	// six sampled rows plus the header
	table := strings.Split(strings.TrimSpace(first), "\n\n")[0]
	assert.Len(t, strings.Split(table, "\n"), 7)

	second, err := execute(t, "sample", "--seed", "42", "--sort", "protein", "--desc", "--balance", "20", "--fat", "30")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSampleCmdRejectsBadGoals(t *testing.T) {
	_, err := execute(t, "sample", "--balance", "twenty")
	assert.ErrorContains(t, err, "balance")

	_, err = execute(t, "sample", "--select", "1,two")
	assert.Error(t, err)
}
