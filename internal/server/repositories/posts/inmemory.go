package posts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	rows []models.Post
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Prepend(ctx context.Context, post *models.Post) (*models.Post, error) {
	stored := *post
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	r.mu.Lock()
	r.rows = append([]models.Post{stored}, r.rows...)
	r.mu.Unlock()

	return &stored, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Post, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
