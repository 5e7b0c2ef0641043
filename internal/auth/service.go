package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yishak-cs/campus-meals/internal/logger"
	"github.com/yishak-cs/campus-meals/internal/models"
)

const minPasswordLength = 6

// Config controls session tokens and password hashing
type Config struct {
	Secret     string
	SessionTTL time.Duration
	BcryptCost int // 0 uses bcrypt.DefaultCost
}

// Service is the built-in identity provider: email/password accounts with
// signed, revocable session tokens.
type Service struct {
	repo     UserRepository
	tokens   *tokenIssuer
	cost     int
	log      *logger.Logger
	notifier *notifier

	mu      sync.Mutex
	revoked map[string]time.Time // session id -> token expiry
}

var _ Provider = (*Service)(nil)

func NewService(repo UserRepository, cfg Config, log *logger.Logger) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("auth: session secret is required")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &Service{
		repo:     repo,
		tokens:   &tokenIssuer{secret: []byte(cfg.Secret), ttl: ttl, now: time.Now},
		cost:     cost,
		log:      log.With("service", "AuthService"),
		notifier: newNotifier(),
		revoked:  make(map[string]time.Time),
	}, nil
}

// SignUp creates an account and signs it in
func (s *Service) SignUp(ctx context.Context, email, password string) (*models.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrAccountExists) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("Account created", "user_id", user.ID)
	return s.startSession(user)
}

// SignIn verifies credentials and starts a session
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.startSession(user)
}

// SignOut revokes the session behind token
func (s *Service) SignOut(_ context.Context, token string) error {
	session, err := s.Validate(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	now := s.tokens.now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}
	s.revoked[session.ID] = session.ExpiresAt
	s.mu.Unlock()

	s.publish(SessionSignedOut, session)
	return nil
}

// Validate returns the session behind a token that is signed, unexpired and not revoked
func (s *Service) Validate(token string) (*models.Session, error) {
	session, err := s.tokens.parse(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, revoked := s.revoked[session.ID]
	s.mu.Unlock()
	if revoked {
		return nil, ErrInvalidToken
	}
	return session, nil
}

// Subscribe delivers session events until the returned cancel func is called
func (s *Service) Subscribe() (<-chan SessionEvent, func()) {
	return s.notifier.subscribe()
}

// Health reports whether the account store is reachable
func (s *Service) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

func (s *Service) startSession(user *models.User) (*models.Session, error) {
	session, err := s.tokens.issue(user, uuid.NewString())
	if err != nil {
		return nil, err
	}
	s.publish(SessionSignedIn, session)
	return session, nil
}

func (s *Service) publish(kind SessionEventKind, session *models.Session) {
	ev := SessionEvent{Kind: kind, Session: *session}
	ev.Session.Token = ""
	if dropped := s.notifier.publish(ev); dropped > 0 {
		s.log.Warn("Session event dropped for slow subscribers", "kind", kind, "dropped", dropped)
	}
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || addr.Name != "" {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
