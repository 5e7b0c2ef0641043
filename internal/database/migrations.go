package database

import (
	"context"
	"fmt"
)

// Migrator prepares the Neo4j schema used by the account store
type Migrator struct {
	client *Neo4jClient
}

// NewMigrator creates a new schema migrator
func NewMigrator(client *Neo4jClient) *Migrator {
	return &Migrator{client: client}
}

// schemaSteps run in order; each statement is idempotent
var schemaSteps = []struct {
	name  string
	query string
}{
	{"user_email_unique", `CREATE CONSTRAINT user_email_unique IF NOT EXISTS FOR (u:User) REQUIRE u.email IS UNIQUE`},
	{"user_id_unique", `CREATE CONSTRAINT user_id_unique IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`},
}

// EnsureSchema creates the constraints the user store relies on
func (m *Migrator) EnsureSchema(ctx context.Context) error {
	m.client.log.Info("Ensuring Neo4j schema", "steps", len(schemaSteps))

	for _, step := range schemaSteps {
		if err := m.client.ExecuteWrite(ctx, step.query, nil); err != nil {
			return fmt.Errorf("failed to apply %s: %w", step.name, err)
		}
		m.client.log.Debug("Applied schema step", "step", step.name)
	}
	return nil
}

// UserCount returns how many accounts are stored
func (m *Migrator) UserCount(ctx context.Context) (int, error) {
	results, err := m.client.ExecuteRead(ctx, `MATCH (u:User) RETURN count(u) AS users`, nil)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	n, _ := results[0]["users"].(int64)
	return int(n), nil
}
