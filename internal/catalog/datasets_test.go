package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yishak-cs/campus-meals/data"
	"github.com/yishak-cs/campus-meals/internal/logger"
)

func TestDecodeRecordToleratesMissingOrBadItems(t *testing.T) {
	rec, skipped, err := DecodeRecord([]byte(`{"restaurant":"Subway"}`))
	require.NoError(t, err)
	assert.Equal(t, "Subway", rec.Restaurant)
	assert.Empty(t, rec.Items)
	assert.Zero(t, skipped)

	rec, _, err = DecodeRecord([]byte(`{"restaurant":"Subway","items":{"oops":true}}`))
	require.NoError(t, err)
	assert.Empty(t, rec.Items)

	rec, _, err = DecodeRecord([]byte(`{"restaurant":"Subway","items":null}`))
	require.NoError(t, err)
	assert.Empty(t, rec.Items)

	rec, skipped, err = DecodeRecord([]byte(`{"restaurant":"Subway","items":[
		{"name":"ok","price":5},
		{"name":"bad","price":"five"},
		{"name":"range","calories_kcal_low":300,"calories_kcal_high":340}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, rec.Items, 2)
	assert.Equal(t, "range", rec.Items[1].Name)
}

func TestDecodeRecordRejectsInvalidJSON(t *testing.T) {
	_, _, err := DecodeRecord([]byte(`{"restaurant":`))
	assert.Error(t, err)
}

func TestSourceBuildFromMapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
default_logo: default.png
logos:
  "Rubio's Coastal Grill": rubios.png
`)},
		"restaurants/b.json": {Data: []byte(`{"restaurant":"Rubio’s Coastal Grill","items":[{"name":"Taco","price":4.99,"calories_kcal":270}]}`)},
		"restaurants/a.json": {Data: []byte(`{"restaurant":"Everbowl","items":[{"name":"Bowl","calories_kcal_low":300,"calories_kcal_high":340}]}`)},
	}

	cat, err := Source{FS: fsys, ConfigPath: "catalog.yaml"}.Build(logger.NewNop())
	require.NoError(t, err)

	groups := cat.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Everbowl", groups[0].RestaurantName, "glob order is sorted by path")
	assert.Equal(t, "default.png", groups[0].LogoRef)
	assert.Equal(t, 320.0, groups[0].Items[0].Calories)
	assert.Equal(t, "rubios.png", groups[1].LogoRef)
	assert.Equal(t, 2, groups[1].Items[0].ID)
}

func TestSourceBuildFailsOnMissingConfig(t *testing.T) {
	_, err := Source{FS: fstest.MapFS{}, ConfigPath: "catalog.yaml"}.Build(logger.NewNop())
	assert.Error(t, err)
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	cat, err := Source{FS: data.FS, ConfigPath: data.ConfigPath}.Build(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 13, cat.RestaurantCount())
	for _, g := range cat.Groups() {
		assert.NotEmpty(t, g.Items, g.RestaurantName)
		assert.NotEmpty(t, g.LogoRef, g.RestaurantName)
	}

	rubios, ok := cat.Restaurant("Rubio’s Coastal Grill")
	require.True(t, ok)
	assert.Equal(t, "images/rubios-logo.png", rubios[0].LogoRef)
}
