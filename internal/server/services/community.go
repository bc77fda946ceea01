package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/repomanager"
)

// CommunityService runs the bulletin board.
type CommunityService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         Clock
}

func NewCommunityService(m repomanager.RepositoryManager, l logging.Logger) *CommunityService {
	return &CommunityService{
		repomanager: m,
		logger:      l.With("module", "community_service"),
		now:         time.Now,
	}
}

// List returns posts newest first.
func (s *CommunityService) List(ctx context.Context) ([]models.Post, error) {
	return s.repomanager.Posts().List(ctx)
}

// Create puts a new post at the top of the board. Title and content are
// both required.
func (s *CommunityService) Create(ctx context.Context, userID, title, content string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("title and content are required: %w", common.ErrorValidation)
	}

	post, err := s.repomanager.Posts().Prepend(ctx, &models.Post{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing post: %w", err)
	}

	s.logger.Info(ctx, "community post created", "user_id", userID, "post_id", post.ID)
	return post, nil
}
