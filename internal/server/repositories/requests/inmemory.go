package requests

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	rows []models.SupportRequest
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Append(ctx context.Context, req *models.SupportRequest) (*models.SupportRequest, error) {
	stored := *req
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	r.mu.Lock()
	r.rows = append(r.rows, stored)
	r.mu.Unlock()

	return &stored, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.SupportRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SupportRequest, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
