package helper

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yishak-cs/campus-meals/data"
	"github.com/yishak-cs/campus-meals/internal/catalog"
	database "github.com/yishak-cs/campus-meals/internal/database"
)

// Config is the process configuration read from the environment
type Config struct {
	Port          string
	LogMode       string
	Neo4j         database.Config
	JWTSecret     string
	SessionTTL    time.Duration
	AuthRequired  bool
	CORSOrigins   []string
	CatalogDir    string // empty uses the embedded datasets
	CatalogConfig string
	CatalogWatch  bool // reload when files under CatalogDir change
}

// LoadConfigFromEnv loads the server configuration from environment variables
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Port:    getEnvOrDefault("APP_PORT", "8080"),
		LogMode: getEnvOrDefault("LOG_MODE", "dev"),
		Neo4j: database.Config{
			URI:      getEnvOrDefault("NEO4J_URI", ""),
			Username: getEnvOrDefault("NEO4J_USERNAME", "neo4j"),
			Password: getEnvOrDefault("NEO4J_PASSWORD", ""),
			Database: getEnvOrDefault("NEO4J_DATABASE", "neo4j"),
		},
		JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
		CORSOrigins:   splitList(getEnvOrDefault("CORS_ORIGINS", "")),
		CatalogDir:    getEnvOrDefault("CATALOG_DIR", ""),
		CatalogConfig: getEnvOrDefault("CATALOG_CONFIG", data.ConfigPath),
	}

	ttl, err := time.ParseDuration(getEnvOrDefault("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	authRequired, err := strconv.ParseBool(getEnvOrDefault("AUTH_REQUIRED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid AUTH_REQUIRED: %w", err)
	}
	cfg.AuthRequired = authRequired

	watch, err := strconv.ParseBool(getEnvOrDefault("CATALOG_WATCH", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CATALOG_WATCH: %w", err)
	}
	cfg.CatalogWatch = watch && cfg.CatalogDir != ""

	if cfg.AuthRequired && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required when AUTH_REQUIRED is true")
	}

	return cfg, nil
}

// CatalogSource returns where menu datasets are read from: CATALOG_DIR on
// disk when set, otherwise the datasets bundled into the binary.
func (c Config) CatalogSource() catalog.Source {
	var fsys fs.FS = data.FS
	if c.CatalogDir != "" {
		fsys = os.DirFS(c.CatalogDir)
	}
	return catalog.Source{FS: fsys, ConfigPath: c.CatalogConfig}
}

// CatalogWatchDirs lists the on-disk directories a catalog watcher should follow
func (c Config) CatalogWatchDirs() []string {
	if c.CatalogDir == "" {
		return nil
	}
	dirs := []string{filepath.Join(c.CatalogDir, filepath.Dir(c.CatalogConfig))}
	if info, err := os.Stat(filepath.Join(c.CatalogDir, filepath.Dir(catalog.DefaultDatasetGlob))); err == nil && info.IsDir() {
		dirs = append(dirs, filepath.Join(c.CatalogDir, filepath.Dir(catalog.DefaultDatasetGlob)))
	}
	return dirs
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
