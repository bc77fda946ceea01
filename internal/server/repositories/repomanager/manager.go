// Package repomanager hands out the repositories backing one server
// instance, so state can be isolated per test run.
package repomanager

import (
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/chat"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/posts"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/requests"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/sos"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/statuses"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Requests() requests.Repository
	Statuses() statuses.Repository
	SOS() sos.Repository
	Chat() chat.Repository
	Posts() posts.Repository
}
