package users

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	created, err := r.Create(ctx, &models.User{ID: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestInMemoryRepository_DuplicateLeavesTableUnchanged(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	_, err := r.Create(ctx, &models.User{ID: "alice", Email: "first@x.com"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{ID: "alice", Email: "second@x.com"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first@x.com", got.Email)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInMemoryRepository_NotFound(t *testing.T) {
	_, err := NewInMemoryRepository().GetUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()
	_, err := r.Create(ctx, &models.User{ID: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	got, err := r.GetUserByLogin(ctx, "bob")
	require.NoError(t, err)
	got.Email = "changed@x.com"

	again, err := r.GetUserByLogin(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", again.Email)
}

func TestInMemoryRepository_ConcurrentCreateSameID(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Create(ctx, &models.User{ID: "race"}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
