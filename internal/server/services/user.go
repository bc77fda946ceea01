package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/auth"
	"github.com/dmitrijs2005/saferoom/internal/server/config"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/repomanager"
)

// DemoUser is an account created at startup when demo seeding is on.
type DemoUser struct {
	ID       string
	Password string
	Email    string
}

// DemoUsers are the accounts available on a fresh server.
var DemoUsers = []DemoUser{
	{ID: "user123", Password: "password123", Email: "user@example.com"},
	{ID: "admin", Password: "adminpass", Email: "admin@example.com"},
}

// UserService provides account operations:
//   - Register: create users
//   - Login: verify credentials and mint a session token
//   - Authenticate: turn a session token back into an identity
type UserService struct {
	repomanager             repomanager.RepositoryManager
	logger                  logging.Logger
	jwtSecret               []byte
	sessionValidityDuration time.Duration
	now                     Clock
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:             m,
		logger:                  l.With("module", "user_service"),
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
		now:                     time.Now,
	}
}

// Register creates a user. Every field is required and the identity is
// stored exactly as given; a taken identity yields common.ErrorAlreadyExists
// and leaves the table unchanged.
func (s *UserService) Register(ctx context.Context, userID, password, email string) (*models.User, error) {
	if strings.TrimSpace(userID) == "" || password == "" || strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("all fields are required: %w", common.ErrorValidation)
	}

	cred := auth.NewCredential(password)
	user := &models.User{
		ID:        userID,
		Email:     email,
		Salt:      cred.Salt,
		Verifier:  cred.Verifier,
		CreatedAt: s.now(),
	}

	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login verifies the password of userID and returns a signed session token.
// Unknown users and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, userID, password string) (string, error) {
	user, err := s.repomanager.Users().GetUserByLogin(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: finding user: %w", common.ErrorInternal, err)
	}

	cred := auth.Credential{Salt: user.Salt, Verifier: user.Verifier}
	if !cred.Matches(password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: signing token: %w", common.ErrorInternal, err)
	}
	return token, nil
}

// Authenticate returns the identity carried by a session token. Tokens
// naming an identity that is not in the user table are rejected.
func (s *UserService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrorUnauthorized
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}

	if _, err := s.repomanager.Users().GetUserByLogin(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: finding user: %w", common.ErrorInternal, err)
	}
	return userID, nil
}

// Email returns the email of userID or common.UnknownEmail.
func (s *UserService) Email(ctx context.Context, userID string) (string, error) {
	return resolveEmail(ctx, s.repomanager.Users(), userID)
}

// SeedDemoUsers registers DemoUsers, skipping the ones already present.
func (s *UserService) SeedDemoUsers(ctx context.Context) error {
	for _, d := range DemoUsers {
		if _, err := s.Register(ctx, d.ID, d.Password, d.Email); err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("seeding %q: %w", d.ID, err)
		}
	}

	n, err := s.repomanager.Users().Count(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	s.logger.Info(ctx, "demo users seeded", "users", n)
	return nil
}
