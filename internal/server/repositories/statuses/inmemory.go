package statuses

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]models.SafetyStatus
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{rows: make(map[string]models.SafetyStatus)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, status *models.SafetyStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[status.UserID] = *status
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*models.SafetyStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &row, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.SafetyStatus, error) {
	r.mu.RLock()
	out := make([]models.SafetyStatus, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}
