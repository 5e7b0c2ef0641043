package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yishak-cs/campus-meals/internal/models"
)

const constraintViolation = "Neo.ClientError.Schema.ConstraintValidationFailed"

// GraphStore is the subset of database.Neo4jClient the user repository needs
type GraphStore interface {
	ExecuteRead(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error)
	ExecuteWriteWithResult(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error)
	Health(ctx context.Context) error
}

// Neo4jUserRepository stores accounts as (:User) nodes
type Neo4jUserRepository struct {
	store GraphStore
}

func NewNeo4jUserRepository(store GraphStore) *Neo4jUserRepository {
	return &Neo4jUserRepository{store: store}
}

func (r *Neo4jUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		OPTIONAL MATCH (existing:User {email: $email})
		WITH existing WHERE existing IS NULL
		CREATE (u:User {
			id: $id,
			email: $email,
			password_hash: $passwordHash,
			created_at: $createdAt
		})
		RETURN u.id AS id
	`

	params := map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"createdAt":    user.CreatedAt,
	}

	results, err := r.store.ExecuteWriteWithResult(ctx, query, params)
	if err != nil {
		var neoErr *neo4j.Neo4jError
		if errors.As(err, &neoErr) && neoErr.Code == constraintViolation {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	if len(results) == 0 {
		return ErrAccountExists
	}
	return nil
}

func (r *Neo4jUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		MATCH (u:User {email: $email})
		RETURN u.id AS id,
			   u.email AS email,
			   u.password_hash AS password_hash,
			   u.created_at AS created_at
		LIMIT 1
	`

	results, err := r.store.ExecuteRead(ctx, query, map[string]interface{}{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrUserNotFound
	}

	row := results[0]
	user := &models.User{}
	user.ID, _ = row["id"].(string)
	user.Email, _ = row["email"].(string)
	user.PasswordHash, _ = row["password_hash"].(string)
	if created, ok := row["created_at"].(time.Time); ok {
		user.CreatedAt = created
	}
	return user, nil
}

func (r *Neo4jUserRepository) Health(ctx context.Context) error {
	return r.store.Health(ctx)
}
