package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/config"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/chat"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newRepos() repomanager.RepositoryManager {
	return repomanager.NewInMemoryRepositoryManager(chat.DefaultGroups)
}

func newUserService(t *testing.T, rm repomanager.RepositoryManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:               "k",
		SessionValidityDuration: time.Hour,
	}
	return NewUserService(rm, logging.Nop{}, cfg)
}

func mustRegister(t *testing.T, rm repomanager.RepositoryManager, id, email string) {
	t.Helper()
	_, err := newUserService(t, rm).Register(context.Background(), id, "pw", email)
	require.NoError(t, err)
}

// fixedClock returns successive instants one minute apart, starting at start.
func fixedClock(start time.Time) Clock {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

// failingUsers fails every lookup with errBoom.
type failingUsers struct{}

func (failingUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, errBoom }
func (failingUsers) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, errBoom
}
func (failingUsers) Count(context.Context) (int, error) { return 0, errBoom }

// brokenUsersManager is an in-memory manager whose user table is broken.
type brokenUsersManager struct {
	repomanager.RepositoryManager
}

func (brokenUsersManager) Users() users.Repository { return failingUsers{} }
