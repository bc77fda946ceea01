// Package chat stores the fixed chat groups and their messages.
package chat

import (
	"context"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
)

type Repository interface {
	// Groups returns the static group set in configuration order.
	Groups(ctx context.Context) ([]models.ChatGroup, error)
	// Group returns common.ErrorNotFound for ids outside the static set.
	Group(ctx context.Context, groupID string) (*models.ChatGroup, error)
	// Append adds msg to the end of its group's log.
	Append(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error)
	// Messages returns the group's messages in insertion order.
	Messages(ctx context.Context, groupID string) ([]models.ChatMessage, error)
}
