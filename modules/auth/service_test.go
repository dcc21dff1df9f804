package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/taskapi/modules/auth"
	"github.com/dmitrymomot/taskapi/pkg/jwt"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTokens(t *testing.T, c *clock) *jwt.Service {
	t.Helper()
	svc, err := jwt.New(jwt.Config{
		Secret:     "auth-module-test-secret-0123456789",
		Issuer:     "taskapi",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}, jwt.WithClock(c.Now))
	require.NoError(t, err)
	return svc
}

func newService(t *testing.T) (*auth.Service, *memoryUsers, *jwt.Service, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	users := newMemoryUsers()
	tokens := newTokens(t, c)
	svc := auth.NewService(users, tokens, auth.WithBcryptCost(bcrypt.MinCost), auth.WithClock(c.Now))
	return svc, users, tokens, c
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	svc, users, tokens, c := newService(t)
	ctx := context.Background()

	user, pair, err := svc.Register(ctx, auth.Registration{Name: "Ada", Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, c.now, user.CreatedAt)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("correct horse")))

	id, err := tokens.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.NoError(t, tokens.VerifyRefresh(pair.RefreshToken))

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", stored.Email)

	_, _, err = svc.Register(ctx, auth.Registration{Name: "Eve", Email: "ada@example.com", Password: "something else"})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	svc, users, tokens, _ := newService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, auth.Registration{Name: "Ada", Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, pair, err := svc.Authenticate(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		id, err := tokens.Verify(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, id)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "ada@example.com", "wrong horse")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

		_, _, err = svc.Authenticate(ctx, "bob@example.com", "correct horse")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("storage faults are not credential errors", func(t *testing.T) {
		users.fail(errDatabaseDown)
		defer users.fail(nil)

		_, _, err := svc.Authenticate(ctx, "ada@example.com", "correct horse")
		assert.ErrorIs(t, err, errDatabaseDown)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestService_Refresh(t *testing.T) {
	t.Parallel()

	svc, users, tokens, c := newService(t)
	ctx := context.Background()

	user, pair, err := svc.Register(ctx, auth.Registration{Name: "Ada", Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	// the access token has expired, the refresh token has not
	c.now = c.now.Add(time.Hour)
	_, err = tokens.Verify(pair.AccessToken)
	require.ErrorIs(t, err, jwt.ErrExpiredToken)

	next, err := svc.Refresh(ctx, pair.RefreshToken, pair.AccessToken)
	require.NoError(t, err)
	id, err := tokens.Verify(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	t.Run("tokens swapped", func(t *testing.T) {
		_, err := svc.Refresh(ctx, next.AccessToken, next.RefreshToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("tampered access token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, next.RefreshToken, next.AccessToken+"x")
		assert.Error(t, err)
		assert.True(t, jwt.IsTokenError(err))
	})

	t.Run("deleted user", func(t *testing.T) {
		users.delete(user.ID)
		_, err := svc.Refresh(ctx, next.RefreshToken, next.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrUnknownUser)
	})
}

func TestService_Me(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, auth.Registration{Name: "Ada", Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)

	got, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = svc.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, jwt.ErrUnknownUser)

	ok, err := svc.UserExists(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
