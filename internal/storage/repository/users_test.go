package repository

import (
	"context"
	"testing"
	"time"

	"github.com/magabrotheeeer/dreambody-studio/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Users(t *testing.T) {
	s, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		u := testUser("C1", "alex")
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		u.SubscriptionStart, u.SubscriptionEnd = &start, &end
		u.IsActive = true

		require.NoError(t, s.CreateUser(ctx, u))

		got, err := s.GetUser(ctx, "C1")
		require.NoError(t, err)
		assert.Equal(t, u.Name, got.Name)
		assert.Equal(t, u.CurrentWeight, got.CurrentWeight)
		require.NotNil(t, got.SubscriptionEnd)
		assert.True(t, end.Equal(got.SubscriptionEnd.UTC()))
		assert.True(t, got.IsActive)
	})

	t.Run("duplicate id is a conflict", func(t *testing.T) {
		err := s.CreateUser(ctx, testUser("C1", "other"))
		require.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.GetUser(ctx, "nope")
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("update missing affects nothing", func(t *testing.T) {
		n, err := s.UpdateUser(ctx, testUser("ghost", "ghost"))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("rename keeps position", func(t *testing.T) {
		require.NoError(t, s.CreateUser(ctx, testUser("C2", "bob")))

		u, err := s.GetUser(ctx, "C1")
		require.NoError(t, err)
		u.ID = "C9"
		require.NoError(t, s.UpdateUserWithIDChange(ctx, "C1", u))

		_, err = s.GetUser(ctx, "C1")
		require.ErrorIs(t, err, storage.ErrNotFound)

		list, err := s.GetUsers(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "C9", list[0].ID)
		assert.Equal(t, "C2", list[1].ID)
	})

	t.Run("rename onto existing id", func(t *testing.T) {
		u, err := s.GetUser(ctx, "C9")
		require.NoError(t, err)
		u.ID = "C2"
		require.ErrorIs(t, s.UpdateUserWithIDChange(ctx, "C9", u), storage.ErrConflict)

		_, err = s.GetUser(ctx, "C9")
		require.NoError(t, err, "failed rename must not lose the record")
	})

	t.Run("rename missing", func(t *testing.T) {
		err := s.UpdateUserWithIDChange(ctx, "nope", testUser("X1", "x"))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		n, err := s.DeleteUser(ctx, "C2")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = s.DeleteUser(ctx, "C2")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.GetUsers(cctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
