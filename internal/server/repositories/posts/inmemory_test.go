package posts

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_PrependNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	p1, err := r.Prepend(ctx, &models.Post{Title: "P1"})
	require.NoError(t, err)
	p2, err := r.Prepend(ctx, &models.Post{Title: "P2"})
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, p2.ID)

	rows, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "P2", rows[0].Title)
	assert.Equal(t, "P1", rows[1].Title)
}

func TestInMemoryRepository_EmptyList(t *testing.T) {
	rows, err := NewInMemoryRepository().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
