package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yishak-cs/campus-meals/internal/models"
)

type fakeGraph struct {
	readRows  []map[string]interface{}
	writeRows []map[string]interface{}
	err       error
	lastQuery string
	params    map[string]interface{}
}

func (g *fakeGraph) ExecuteRead(_ context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	g.lastQuery, g.params = query, params
	return g.readRows, g.err
}

func (g *fakeGraph) ExecuteWriteWithResult(_ context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	g.lastQuery, g.params = query, params
	return g.writeRows, g.err
}

func (g *fakeGraph) Health(context.Context) error { return g.err }

func TestNeo4jCreate(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: "u1", Email: "a@b.edu", PasswordHash: "hash", CreatedAt: time.Now()}

	g := &fakeGraph{writeRows: []map[string]interface{}{{"id": "u1"}}}
	require.NoError(t, NewNeo4jUserRepository(g).Create(ctx, user))
	assert.Equal(t, "a@b.edu", g.params["email"])
	assert.Equal(t, "hash", g.params["passwordHash"])

	g = &fakeGraph{}
	assert.ErrorIs(t, NewNeo4jUserRepository(g).Create(ctx, user), ErrAccountExists)

	g = &fakeGraph{err: fmt.Errorf("failed to execute write query: %w", &neo4j.Neo4jError{Code: constraintViolation})}
	assert.ErrorIs(t, NewNeo4jUserRepository(g).Create(ctx, user), ErrAccountExists)

	g = &fakeGraph{err: errors.New("connection reset")}
	err := NewNeo4jUserRepository(g).Create(ctx, user)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountExists)
}

func TestNeo4jFindByEmail(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	g := &fakeGraph{readRows: []map[string]interface{}{{
		"id": "u1", "email": "a@b.edu", "password_hash": "hash", "created_at": created,
	}}}
	user, err := NewNeo4jUserRepository(g).FindByEmail(ctx, "a@b.edu")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: "u1", Email: "a@b.edu", PasswordHash: "hash", CreatedAt: created}, user)

	_, err = NewNeo4jUserRepository(&fakeGraph{}).FindByEmail(ctx, "a@b.edu")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
