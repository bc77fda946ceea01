// Package statuses stores the latest safety status per user.
package statuses

import (
	"context"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
)

type Repository interface {
	// Upsert inserts status or replaces the row with the same UserID.
	Upsert(ctx context.Context, status *models.SafetyStatus) error
	Get(ctx context.Context, userID string) (*models.SafetyStatus, error)
	// List returns one row per user, ordered by UserID.
	List(ctx context.Context) ([]models.SafetyStatus, error)
}
