package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/repomanager"
)

// SafetyOverview is what the safety-check page shows.
type SafetyOverview struct {
	// Requests are newest first.
	Requests []models.SupportRequest
	Statuses []models.SafetyStatus
}

// SafetyService handles support requests and safety check-ins.
type SafetyService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         Clock
}

func NewSafetyService(m repomanager.RepositoryManager, l logging.Logger) *SafetyService {
	return &SafetyService{
		repomanager: m,
		logger:      l.With("module", "safety_service"),
		now:         time.Now,
	}
}

// SubmitRequest appends a support request on behalf of userID.
func (s *SafetyService) SubmitRequest(ctx context.Context, userID, category, priority, details string) (*models.SupportRequest, error) {
	email, err := resolveEmail(ctx, s.repomanager.Users(), userID)
	if err != nil {
		return nil, fmt.Errorf("error resolving email: %w", err)
	}

	req, err := s.repomanager.Requests().Append(ctx, &models.SupportRequest{
		UserID:    userID,
		Email:     email,
		Category:  category,
		Priority:  priority,
		Details:   details,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing support request: %w", err)
	}

	s.logger.Info(ctx, "support request submitted", "user_id", userID, "category", category, "priority", priority)
	return req, nil
}

// CheckIn records userID as safe, replacing any earlier report.
func (s *SafetyService) CheckIn(ctx context.Context, userID string) (*models.SafetyStatus, error) {
	email, err := resolveEmail(ctx, s.repomanager.Users(), userID)
	if err != nil {
		return nil, fmt.Errorf("error resolving email: %w", err)
	}

	status := &models.SafetyStatus{
		UserID:     userID,
		Email:      email,
		Status:     common.StatusSafe,
		ReportedAt: s.now(),
	}
	if err := s.repomanager.Statuses().Upsert(ctx, status); err != nil {
		return nil, fmt.Errorf("error storing safety status: %w", err)
	}

	s.logger.Info(ctx, "safety check-in", "user_id", userID)
	return status, nil
}

// Status returns the latest report of userID, or nil when there is none.
func (s *SafetyService) Status(ctx context.Context, userID string) (*models.SafetyStatus, error) {
	status, err := s.repomanager.Statuses().Get(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding safety status: %w", err)
	}
	return status, nil
}

// Overview lists support requests newest first and every safety status.
func (s *SafetyService) Overview(ctx context.Context) (*SafetyOverview, error) {
	reqs, err := s.repomanager.Requests().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing support requests: %w", err)
	}
	for i, j := 0, len(reqs)-1; i < j; i, j = i+1, j-1 {
		reqs[i], reqs[j] = reqs[j], reqs[i]
	}

	statuses, err := s.repomanager.Statuses().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing safety statuses: %w", err)
	}

	return &SafetyOverview{Requests: reqs, Statuses: statuses}, nil
}
