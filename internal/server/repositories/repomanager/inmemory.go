package repomanager

import (
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/chat"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/posts"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/requests"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/sos"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/statuses"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/users"
)

type InMemoryRepositoryManager struct {
	users    users.Repository
	requests requests.Repository
	statuses statuses.Repository
	sos      sos.Repository
	chat     chat.Repository
	posts    posts.Repository
}

func (m *InMemoryRepositoryManager) Users() users.Repository       { return m.users }
func (m *InMemoryRepositoryManager) Requests() requests.Repository { return m.requests }
func (m *InMemoryRepositoryManager) Statuses() statuses.Repository { return m.statuses }
func (m *InMemoryRepositoryManager) SOS() sos.Repository           { return m.sos }
func (m *InMemoryRepositoryManager) Chat() chat.Repository         { return m.chat }
func (m *InMemoryRepositoryManager) Posts() posts.Repository       { return m.posts }

// NewInMemoryRepositoryManager builds fresh, empty tables. groups is the
// fixed chat group set.
func NewInMemoryRepositoryManager(groups []models.ChatGroup) RepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		requests: requests.NewInMemoryRepository(),
		statuses: statuses.NewInMemoryRepository(),
		sos:      sos.NewInMemoryRepository(),
		chat:     chat.NewInMemoryRepository(groups),
		posts:    posts.NewInMemoryRepository(),
	}
}
