package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yishak-cs/campus-meals/internal/models"
)

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and verifies HS256 session tokens
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func (t *tokenIssuer) issue(user *models.User, sessionID string) (*models.Session, error) {
	now := t.now()
	expires := now.Add(t.ttl)

	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &models.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expires,
	}, nil
}

func (t *tokenIssuer) parse(token string) (*models.Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &models.Session{
		ID:        claims.ID,
		UserID:    claims.Subject,
		Email:     claims.Email,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
