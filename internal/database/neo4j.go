package database

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yishak-cs/campus-meals/internal/logger"
)

// Neo4jClient wraps the Neo4j driver with application-specific methods
type Neo4jClient struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logger.Logger
}

// Config holds the Neo4j connection configuration
type Config struct {
	URI      string
	Username string
	Password string
	Database string // typically "neo4j" for AuraDB
	Timeout  time.Duration
}

// Enabled reports whether a Neo4j URI was configured
func (c Config) Enabled() bool {
	return c.URI != ""
}

// NewNeo4jClient creates a new Neo4j client connection
func NewNeo4jClient(config Config, log *logger.Logger) (*Neo4jClient, error) {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	driver, err := neo4j.NewDriverWithContext(config.URI, neo4j.BasicAuth(config.Username, config.Password, ""), func(cfg *neo4j.Config) {
		cfg.SocketConnectTimeout = timeout
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify Neo4j connectivity: %w", err)
	}

	log.Info("Connected to Neo4j", "uri", config.URI, "database", config.Database)
	return &Neo4jClient{
		driver:   driver,
		database: config.Database,
		log:      log.With("client", "Neo4j"),
	}, nil
}

// Close closes the Neo4j driver connection
func (c *Neo4jClient) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// ExecuteWrite executes a write query (CREATE, MERGE, DELETE, etc.)
func (c *Neo4jClient) ExecuteWrite(ctx context.Context, query string, params map[string]interface{}) error {
	_, err := c.ExecuteWriteWithResult(ctx, query, params)
	return err
}

// ExecuteWriteWithResult executes a write query and returns results
func (c *Neo4jClient) ExecuteWriteWithResult(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		c.driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(c.database),
		neo4j.ExecuteQueryWithWritersRouting())
	if err != nil {
		return nil, fmt.Errorf("failed to execute write query: %w", err)
	}
	return recordsToMaps(result.Records), nil
}

// ExecuteRead executes a read query and processes results
func (c *Neo4jClient) ExecuteRead(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		c.driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(c.database),
		neo4j.ExecuteQueryWithReadersRouting())
	if err != nil {
		return nil, fmt.Errorf("failed to execute read query: %w", err)
	}
	return recordsToMaps(result.Records), nil
}

// Health checks the database connection health
func (c *Neo4jClient) Health(ctx context.Context) error {
	if _, err := c.ExecuteRead(ctx, "RETURN 1", nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func recordsToMaps(records []*neo4j.Record) []map[string]interface{} {
	var results []map[string]interface{}
	for _, record := range records {
		recordMap := make(map[string]interface{}, len(record.Keys))
		for i, key := range record.Keys {
			recordMap[key] = record.Values[i]
		}
		results = append(results, recordMap)
	}
	return results
}
