package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	rm := newRepos()
	s := newUserService(t, rm)

	u, err := s.Register(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEmpty(t, u.Salt)
	assert.NotEqual(t, []byte("pw1"), u.Verifier)
}

func TestUserService_Register_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name                   string
		userID, password, mail string
	}{
		{"empty id", "", "pw", "a@x.com"},
		{"blank id", "   ", "pw", "a@x.com"},
		{"empty password", "alice", "", "a@x.com"},
		{"empty email", "alice", "pw", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newRepos()
			_, err := newUserService(t, rm).Register(ctx, tt.userID, tt.password, tt.mail)
			assert.ErrorIs(t, err, common.ErrorValidation)

			n, err := rm.Users().Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestUserService_Register_DuplicateLeavesTableUnchanged(t *testing.T) {
	ctx := context.Background()
	rm := newRepos()
	s := newUserService(t, rm)

	_, err := s.Register(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "other", "b@x.com")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	u, err := rm.Users().GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = s.Login(ctx, "alice", "pw1")
	assert.NoError(t, err)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t, newRepos())

	_, err := s.Register(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)

	token, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	id, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "alice", id)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "nobody", "pw1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_Login_RepositoryFailure(t *testing.T) {
	s := newUserService(t, brokenUsersManager{newRepos()})

	_, err := s.Login(context.Background(), "alice", "pw1")
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorIs(t, err, errBoom)
}

func TestUserService_Authenticate_RepositoryFailure(t *testing.T) {
	token, err := auth.GenerateToken("alice", []byte("k"), time.Hour)
	require.NoError(t, err)

	s := newUserService(t, brokenUsersManager{newRepos()})
	_, err = s.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorIs(t, err, errBoom)
}

func TestUserService_PaddedIdentityStoredAsTyped(t *testing.T) {
	ctx := context.Background()
	rm := newRepos()
	s := newUserService(t, rm)

	u, err := s.Register(ctx, " alice ", "pw1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, " alice ", u.ID)

	_, err = s.Login(ctx, " alice ", "pw1")
	assert.NoError(t, err)

	_, err = s.Login(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	s := newUserService(t, newRepos())
	_, err := s.Register(ctx, "alice", "pw1", "a@x.com")
	require.NoError(t, err)

	token, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	id, err := s.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", id)

	_, err = s.Authenticate(ctx, "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	ghost, err := auth.GenerateToken("ghost", []byte("k"), time.Hour)
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	expired, err := auth.GenerateToken("alice", []byte("k"), -time.Minute)
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestUserService_Email(t *testing.T) {
	ctx := context.Background()
	rm := newRepos()
	mustRegister(t, rm, "alice", "a@x.com")
	s := newUserService(t, rm)

	email, err := s.Email(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	email, err = s.Email(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, common.UnknownEmail, email)
}

func TestUserService_SeedDemoUsers_Idempotent(t *testing.T) {
	ctx := context.Background()
	rm := newRepos()
	s := newUserService(t, rm)

	require.NoError(t, s.SeedDemoUsers(ctx))
	require.NoError(t, s.SeedDemoUsers(ctx))

	n, err := rm.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(DemoUsers), n)

	_, err = s.Login(ctx, "user123", "password123")
	assert.NoError(t, err)
	_, err = s.Login(ctx, "admin", "adminpass")
	assert.NoError(t, err)
}
