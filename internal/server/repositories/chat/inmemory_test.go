package chat

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_Groups(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository(DefaultGroups)

	groups, err := r.Groups(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultGroups, groups)

	g, err := r.Group(ctx, "shelter")
	require.NoError(t, err)
	assert.Equal(t, "Evacuation Shelter", g.Name)

	_, err = r.Group(ctx, "unknown_group")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_MessagesPerGroup(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository(DefaultGroups)

	_, err := r.Append(ctx, &models.ChatMessage{GroupID: "family", UserID: "alice", Text: "one"})
	require.NoError(t, err)
	_, err = r.Append(ctx, &models.ChatMessage{GroupID: "family", UserID: "bob", Text: "two"})
	require.NoError(t, err)
	_, err = r.Append(ctx, &models.ChatMessage{GroupID: "shelter", UserID: "bob", Text: "elsewhere"})
	require.NoError(t, err)

	family, err := r.Messages(ctx, "family")
	require.NoError(t, err)
	require.Len(t, family, 2)
	assert.Equal(t, "one", family[0].Text)
	assert.Equal(t, "two", family[1].Text)

	volunteers, err := r.Messages(ctx, "volunteers")
	require.NoError(t, err)
	assert.Empty(t, volunteers)
}

func TestInMemoryRepository_UnknownGroupRejected(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository(DefaultGroups)

	_, err := r.Append(ctx, &models.ChatMessage{GroupID: "nope", Text: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.Messages(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_GroupsAreCopied(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository(DefaultGroups)

	groups, err := r.Groups(ctx)
	require.NoError(t, err)
	groups[0].Name = "changed"

	again, err := r.Groups(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Family", again[0].Name)
}
