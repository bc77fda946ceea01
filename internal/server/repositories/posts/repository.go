// Package posts stores community board posts, newest first.
package posts

import (
	"context"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
)

type Repository interface {
	// Prepend puts post in front of every existing post.
	Prepend(ctx context.Context, post *models.Post) (*models.Post, error)
	// List returns posts in stored order, newest first.
	List(ctx context.Context) ([]models.Post, error)
}
