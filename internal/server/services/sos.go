package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/repomanager"
)

// SOSService records emergency broadcasts. Nothing is delivered to anyone;
// the report is stored and logged.
type SOSService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         Clock
}

func NewSOSService(m repomanager.RepositoryManager, l logging.Logger) *SOSService {
	return &SOSService{
		repomanager: m,
		logger:      l.With("module", "sos_service"),
		now:         time.Now,
	}
}

func (s *SOSService) Submit(ctx context.Context, userID string) (*models.SOSReport, error) {
	email, err := resolveEmail(ctx, s.repomanager.Users(), userID)
	if err != nil {
		return nil, fmt.Errorf("error resolving email: %w", err)
	}

	report, err := s.repomanager.SOS().Append(ctx, &models.SOSReport{
		UserID:    userID,
		Email:     email,
		Message:   common.SOSMessage,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing sos report: %w", err)
	}

	s.logger.Warn(ctx, "sos received", "user_id", userID, "email", email, "report_id", report.ID)
	return report, nil
}

// History returns the reports of userID, newest first.
func (s *SOSService) History(ctx context.Context, userID string) ([]models.SOSReport, error) {
	rows, err := s.repomanager.SOS().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing sos reports: %w", err)
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
