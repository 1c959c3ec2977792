package repository

import (
	"context"
	"testing"
	"time"

	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Catalog(t *testing.T) {
	s, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("packages replace all and keep order", func(t *testing.T) {
		pkgs := []models.PricingPackage{
			{ID: "p2", Name: "Gold", Price: "1500", DurationMonths: 3, Features: []string{"Gym", "Pool"}},
			{ID: "p1", Name: "Basic", Price: "500", DurationMonths: 1},
		}
		require.NoError(t, s.SavePackages(ctx, pkgs))

		got, err := s.GetPackages(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "p2", got[0].ID)
		assert.Equal(t, []string{"Gym", "Pool"}, got[0].Features)
		assert.Equal(t, []string{}, got[1].Features)

		require.NoError(t, s.SavePackages(ctx, pkgs[1:]))
		got, err = s.GetPackages(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Basic", got[0].Name)
	})

	t.Run("promo upsert and delete", func(t *testing.T) {
		deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		p := models.PromoCode{ID: "pr1", Code: "SUMMER", Discount: "10%", Deadline: deadline}
		require.NoError(t, s.SavePromoCode(ctx, p))

		p.Discount = "20%"
		require.NoError(t, s.SavePromoCode(ctx, p))

		got, err := s.GetPromoCodes(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "20%", got[0].Discount)
		assert.True(t, deadline.Equal(got[0].Deadline.UTC()))

		n, err := s.DeletePromoCode(ctx, "pr1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		n, err = s.DeletePromoCode(ctx, "pr1")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("offer upsert and delete", func(t *testing.T) {
		o := models.Offer{ID: "o1", Title: "Free week", ShowLimit: 3, IsActive: true}
		require.NoError(t, s.SaveOffer(ctx, o))
		o.IsActive = false
		require.NoError(t, s.SaveOffer(ctx, o))

		got, err := s.GetOffers(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.False(t, got[0].IsActive)

		n, err := s.DeleteOffer(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("admin profile seeded and updated", func(t *testing.T) {
		p, err := s.GetAdminProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "admin", p.ID)

		p.Email = "owner@dreambody.eg"
		p.Password = "new-pass"
		require.NoError(t, s.UpdateAdminProfile(ctx, p))

		got, err := s.GetAdminProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})
}
