package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/models"
)

// DefaultDatasetGlob is used when the config lists no dataset files
const DefaultDatasetGlob = "restaurants/*.json"

// Config is the static configuration handed to the loader: which
// datasets to read and the logo lookup table.
type Config struct {
	DefaultLogo string            `yaml:"default_logo"`
	Logos       map[string]string `yaml:"logos"`
	Datasets    []string          `yaml:"datasets"`
}

// LoadConfig reads a YAML catalog config from fsys
func LoadConfig(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read catalog config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse catalog config %s: %w", path, err)
	}
	return &cfg, nil
}

// LogoTable builds the immutable logo table described by the config
func (c *Config) LogoTable() *LogoTable {
	return NewLogoTable(c.Logos, c.DefaultLogo)
}

// DatasetPaths returns the configured dataset files, or every file matching
// DefaultDatasetGlob in name order when none are listed.
func (c *Config) DatasetPaths(fsys fs.FS) ([]string, error) {
	if len(c.Datasets) > 0 {
		return append([]string(nil), c.Datasets...), nil
	}
	paths, err := fs.Glob(fsys, DefaultDatasetGlob)
	if err != nil {
		return nil, fmt.Errorf("glob datasets: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadDatasets decodes every dataset file in order.
// Unreadable or non-JSON files fail the whole read; malformed items inside a
// valid file are skipped and logged.
func ReadDatasets(fsys fs.FS, paths []string, log *logger.Logger) ([]models.RestaurantRecord, error) {
	records := make([]models.RestaurantRecord, 0, len(paths))
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", path, err)
		}

		rec, skipped, err := DecodeRecord(data)
		if err != nil {
			return nil, fmt.Errorf("decode dataset %s: %w", path, err)
		}
		if skipped > 0 {
			log.Warn("Skipped malformed menu items", "dataset", path, "skipped", skipped)
		}
		log.Debug("Read dataset", "dataset", path, "restaurant", rec.Restaurant, "items", len(rec.Items))

		records = append(records, rec)
	}
	return records, nil
}

// DecodeRecord decodes one restaurant dataset.
// A missing or non-array "items" yields zero items. Items that do not decode
// are dropped and counted in skipped.
func DecodeRecord(data []byte) (rec models.RestaurantRecord, skipped int, err error) {
	var envelope struct {
		Restaurant string          `json:"restaurant"`
		Items      json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return models.RestaurantRecord{}, 0, err
	}
	rec.Restaurant = envelope.Restaurant

	var rawItems []json.RawMessage
	if len(envelope.Items) == 0 || json.Unmarshal(envelope.Items, &rawItems) != nil {
		return rec, 0, nil
	}

	rec.Items = make([]models.RawItem, 0, len(rawItems))
	for _, raw := range rawItems {
		var item models.RawItem
		if err := json.Unmarshal(raw, &item); err != nil {
			skipped++
			continue
		}
		rec.Items = append(rec.Items, item)
	}
	return rec, skipped, nil
}
