package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Users(t *testing.T) {
	ctx := context.Background()
	s := New()

	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateUser(ctx, models.User{ID: "C1", Name: "Alex", SubscriptionEnd: &end}))
	require.NoError(t, s.CreateUser(ctx, models.User{ID: "C2", Name: "Bob"}))
	require.ErrorIs(t, s.CreateUser(ctx, models.User{ID: "C1"}), storage.ErrConflict)

	got, err := s.GetUser(ctx, "C1")
	require.NoError(t, err)
	*got.SubscriptionEnd = got.SubscriptionEnd.AddDate(1, 0, 0)
	again, err := s.GetUser(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, end, *again.SubscriptionEnd, "returned records must be copies")

	_, err = s.GetUser(ctx, "nope")
	require.ErrorIs(t, err, storage.ErrNotFound)

	n, err := s.UpdateUser(ctx, models.User{ID: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.ErrorIs(t, s.UpdateUserWithIDChange(ctx, "C1", models.User{ID: "C2"}), storage.ErrConflict)
	require.ErrorIs(t, s.UpdateUserWithIDChange(ctx, "nope", models.User{ID: "C7"}), storage.ErrNotFound)
	require.NoError(t, s.UpdateUserWithIDChange(ctx, "C1", models.User{ID: "C9", Name: "Alex"}))

	list, err := s.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "C9", list[0].ID, "rename keeps position")

	n, err = s.DeleteUser(ctx, "C9")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.DeleteUser(ctx, "C9")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStorage_Catalog(t *testing.T) {
	ctx := context.Background()
	s := New()

	pkgs := []models.PricingPackage{{ID: "p1", Name: "Basic", DurationMonths: 1, Features: []string{"Gym"}}}
	require.NoError(t, s.SavePackages(ctx, pkgs))
	pkgs[0].Features[0] = "mutated"

	got, err := s.GetPackages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gym"}, got[0].Features)

	require.NoError(t, s.SavePromoCode(ctx, models.PromoCode{ID: "a", Code: "X", Discount: "10%"}))
	require.NoError(t, s.SavePromoCode(ctx, models.PromoCode{ID: "a", Code: "X", Discount: "20%"}))
	promos, err := s.GetPromoCodes(ctx)
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, "20%", promos[0].Discount)

	require.NoError(t, s.SaveOffer(ctx, models.Offer{ID: "o", Title: "T", ShowLimit: 3}))
	n, err := s.DeleteOffer(ctx, "o")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	admin, err := s.GetAdminProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.ID)
}

func TestStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.CreateUser(ctx, models.User{ID: string(rune('A' + i%26)), Name: "n"})
			_, _ = s.GetUsers(ctx)
		}(i)
	}
	wg.Wait()

	list, err := s.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 26)
}

func TestStorage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().GetUsers(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
