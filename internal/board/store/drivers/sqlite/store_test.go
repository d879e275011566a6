package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/driftlab/driftboard/internal/board/domain"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestCreateUserAssignsIDAndTimestamps(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, domain.User{
		Username:     "ben",
		Email:        "ben@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	u, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "ben", u.Username)
	require.Equal(t, "ben@example.com", u.Email)
	require.Equal(t, "hash", u.PasswordHash)
	require.WithinDuration(t, time.Now().UTC(), u.CreatedAt, time.Minute)
	require.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestCreateUserClassifiesConflicts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().CreateUser(ctx, domain.User{
		Username: "ben", Email: "ben@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	_, err = s.Users().CreateUser(ctx, domain.User{
		Username: "ben", Email: "other@example.com", PasswordHash: "hash",
	})
	require.ErrorIs(t, err, store.ErrDuplicateUsername)

	_, err = s.Users().CreateUser(ctx, domain.User{
		Username: "other", Email: "ben@example.com", PasswordHash: "hash",
	})
	require.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestGetUserLookups(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, domain.User{
		Username: "ben", Email: "ben@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	byName, err := s.Users().GetUserByUsername(ctx, "ben")
	require.NoError(t, err)
	require.Equal(t, id, byName.ID)

	byEmail, err := s.Users().GetUserByEmail(ctx, "ben@example.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)

	_, err = s.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Users().GetUserByID(ctx, 9999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Users().CreateUser(ctx, domain.User{
		Username: "ben", Email: "ben@example.com", PasswordHash: "old",
	})
	require.NoError(t, err)

	require.NoError(t, s.Users().UpdatePasswordHash(ctx, id, "new"))

	u, err := s.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "new", u.PasswordHash)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sentinel := store.ErrNotFound
	err := s.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{
			Username: "ghost", Email: "ghost@example.com", PasswordHash: "hash",
		})
		require.NoError(t, err)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = s.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}
