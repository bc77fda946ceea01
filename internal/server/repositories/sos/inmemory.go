package sos

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	rows []models.SOSReport
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Append(ctx context.Context, report *models.SOSReport) (*models.SOSReport, error) {
	stored := *report
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	r.mu.Lock()
	r.rows = append(r.rows, stored)
	r.mu.Unlock()

	return &stored, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]models.SOSReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.SOSReport
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}
