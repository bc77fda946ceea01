// Package requests stores support requests as an append-only log.
package requests

import (
	"context"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
)

type Repository interface {
	// Append adds req to the end of the log and returns the stored copy.
	Append(ctx context.Context, req *models.SupportRequest) (*models.SupportRequest, error)
	// List returns every request in insertion order.
	List(ctx context.Context) ([]models.SupportRequest, error)
}
