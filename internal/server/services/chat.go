package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/repomanager"
)

// ChatRoom is one group with its messages in insertion order.
type ChatRoom struct {
	Group    models.ChatGroup
	Messages []models.ChatMessage
}

type ChatService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         Clock
}

func NewChatService(m repomanager.RepositoryManager, l logging.Logger) *ChatService {
	return &ChatService{
		repomanager: m,
		logger:      l.With("module", "chat_service"),
		now:         time.Now,
	}
}

func (s *ChatService) Groups(ctx context.Context) ([]models.ChatGroup, error) {
	return s.repomanager.Chat().Groups(ctx)
}

// Room returns common.ErrorNotFound for unknown groups.
func (s *ChatService) Room(ctx context.Context, groupID string) (*ChatRoom, error) {
	group, err := s.repomanager.Chat().Group(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error finding group: %w", err)
	}

	msgs, err := s.repomanager.Chat().Messages(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	return &ChatRoom{Group: *group, Messages: msgs}, nil
}

// Post appends text to the group. Blank text is dropped without error and
// a nil message is returned.
func (s *ChatService) Post(ctx context.Context, groupID, userID, text string) (*models.ChatMessage, error) {
	if _, err := s.repomanager.Chat().Group(ctx, groupID); err != nil {
		return nil, fmt.Errorf("error finding group: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	msg, err := s.repomanager.Chat().Append(ctx, &models.ChatMessage{
		GroupID:   groupID,
		UserID:    userID,
		Text:      text,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing message: %w", err)
	}

	s.logger.Debug(ctx, "chat message posted", "group_id", groupID, "user_id", userID)
	return msg, nil
}
