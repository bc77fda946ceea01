// Package sos stores SOS reports as an append-only log.
package sos

import (
	"context"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, report *models.SOSReport) (*models.SOSReport, error)
	// ListByUser returns the reports of userID in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.SOSReport, error)
}
