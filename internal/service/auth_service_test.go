package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-task-api/internal/store/memory"
	"go-task-api/pkg/apierror"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()
	svc, err := NewAuthService(testSecret, ttl, 4, memory.NewStore())
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService("  ", time.Hour, 10, memory.NewStore())
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := svc.Register(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other-password")
		assertStatus(t, err, http.StatusConflict)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "secret123")
		assertStatus(t, err, http.StatusBadRequest)

		_, err = svc.Register(ctx, "bob", "")
		assertStatus(t, err, http.StatusBadRequest)
	})
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	t.Run("success round-trip", func(t *testing.T) {
		token, err := svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.NotEmpty(t, claims.TokenID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "wrong")
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "secret123")
		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()

	t.Run("expired token rejected", func(t *testing.T) {
		svc := newAuthService(t, time.Millisecond)
		_, err := svc.Register(ctx, "alice", "secret123")
		require.NoError(t, err)

		token, err := svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)

		_, err = svc.VerifyToken(token)
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		svc := newAuthService(t, time.Hour)
		_, err := svc.Register(ctx, "alice", "secret123")
		require.NoError(t, err)

		token, err := svc.Login(ctx, "alice", "secret123")
		require.NoError(t, err)

		other, err := NewAuthService("a-different-secret", time.Hour, 4, memory.NewStore())
		require.NoError(t, err)

		_, err = other.VerifyToken(token)
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		svc := newAuthService(t, time.Hour)
		_, err := svc.VerifyToken("not-a-token")
		assertStatus(t, err, http.StatusUnauthorized)
	})
}

func TestGetUserByID(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	user, err := svc.GetUserByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetUserByID(ctx, "missing")
	assertStatus(t, err, http.StatusNotFound)
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, want, apiErr.HTTPStatus)
}
