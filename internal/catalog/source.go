package catalog

import (
	"fmt"
	"io/fs"

	"github.com/yishak-cs/campus-meals/internal/logger"
)

// Source describes where catalog config and datasets live
type Source struct {
	FS         fs.FS
	ConfigPath string
}

// Build reads the config and every dataset from the source and loads a new catalog
func (s Source) Build(log *logger.Logger) (*Catalog, error) {
	if s.FS == nil {
		return nil, fmt.Errorf("catalog source has no filesystem")
	}
	cfg, err := LoadConfig(s.FS, s.ConfigPath)
	if err != nil {
		return nil, err
	}
	paths, err := cfg.DatasetPaths(s.FS)
	if err != nil {
		return nil, err
	}

	log.Info("Loading catalog", "config", s.ConfigPath, "datasets", len(paths))
	records, err := ReadDatasets(s.FS, paths, log)
	if err != nil {
		return nil, err
	}

	cat := Load(records, cfg.LogoTable())
	log.Info("Catalog loaded", "restaurants", cat.RestaurantCount(), "items", cat.ItemCount())
	return cat, nil
}
