package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/google/uuid"
)

// DefaultGroups is the group set the server starts with.
var DefaultGroups = []models.ChatGroup{
	{ID: "family", Name: "Family"},
	{ID: "neighborhood", Name: "Neighborhood"},
	{ID: "shelter", Name: "Evacuation Shelter"},
	{ID: "volunteers", Name: "Volunteers"},
}

// InMemoryRepository has one message log per group. The group set is fixed
// at construction.
type InMemoryRepository struct {
	groups []models.ChatGroup

	mu       sync.RWMutex
	messages map[string][]models.ChatMessage
}

func NewInMemoryRepository(groups []models.ChatGroup) *InMemoryRepository {
	r := &InMemoryRepository{
		groups:   append([]models.ChatGroup(nil), groups...),
		messages: make(map[string][]models.ChatMessage, len(groups)),
	}
	for _, g := range groups {
		r.messages[g.ID] = nil
	}
	return r
}

func (r *InMemoryRepository) Groups(ctx context.Context) ([]models.ChatGroup, error) {
	return append([]models.ChatGroup(nil), r.groups...), nil
}

func (r *InMemoryRepository) Group(ctx context.Context, groupID string) (*models.ChatGroup, error) {
	for _, g := range r.groups {
		if g.ID == groupID {
			group := g
			return &group, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Append(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	stored := *msg
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	log, ok := r.messages[stored.GroupID]
	if !ok {
		return nil, fmt.Errorf("group %q: %w", stored.GroupID, common.ErrorNotFound)
	}
	r.messages[stored.GroupID] = append(log, stored)

	return &stored, nil
}

func (r *InMemoryRepository) Messages(ctx context.Context, groupID string) ([]models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log, ok := r.messages[groupID]
	if !ok {
		return nil, fmt.Errorf("group %q: %w", groupID, common.ErrorNotFound)
	}

	out := make([]models.ChatMessage, len(log))
	copy(out, log)
	return out, nil
}
