package packages

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetPackages(ctx context.Context) ([]models.PricingPackage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PricingPackage), args.Error(1)
}

func (m *RepoMock) SavePackages(ctx context.Context, pkgs []models.PricingPackage) error {
	return m.Called(ctx, pkgs).Error(0)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *CacheMock) Invalidate(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_List(t *testing.T) {
	stored := []models.PricingPackage{{ID: "p1", Name: "Basic", DurationMonths: 1, Features: []string{"Gym"}}}

	t.Run("cache hit", func(t *testing.T) {
		repo, cache := new(RepoMock), new(CacheMock)
		cache.On("Get", mock.Anything, cacheKey, mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*[]models.PricingPackage) = stored
			}).Return(true, nil).Once()

		got, err := New(repo, cache, NewNoopLogger()).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		repo.AssertNotCalled(t, "GetPackages", mock.Anything)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		repo, cache := new(RepoMock), new(CacheMock)
		cache.On("Get", mock.Anything, cacheKey, mock.Anything).Return(false, nil).Once()
		repo.On("GetPackages", mock.Anything).Return(stored, nil).Once()
		cache.On("Set", mock.Anything, cacheKey, stored).Return(nil).Once()

		got, err := New(repo, cache, NewNoopLogger()).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure falls back to storage", func(t *testing.T) {
		repo, cache := new(RepoMock), new(CacheMock)
		cache.On("Get", mock.Anything, cacheKey, mock.Anything).Return(false, errors.New("redis down")).Once()
		repo.On("GetPackages", mock.Anything).Return(stored, nil).Once()
		cache.On("Set", mock.Anything, cacheKey, stored).Return(errors.New("redis down")).Once()

		got, err := New(repo, cache, NewNoopLogger()).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, cache := new(RepoMock), new(CacheMock)
		cache.On("Get", mock.Anything, cacheKey, mock.Anything).Return(false, nil).Once()
		repo.On("GetPackages", mock.Anything).Return([]models.PricingPackage(nil), errors.New("db down")).Once()

		_, err := New(repo, cache, NewNoopLogger()).List(context.Background())
		require.Error(t, err)
	})
}

func TestService_SaveAll(t *testing.T) {
	t.Run("normalises and invalidates cache", func(t *testing.T) {
		repo, cache := new(RepoMock), new(CacheMock)
		repo.On("SavePackages", mock.Anything, mock.MatchedBy(func(p []models.PricingPackage) bool {
			return len(p) == 2 &&
				p[0].ID == "p1" && assert.ObjectsAreEqual([]string{"Gym", "Pool"}, p[0].Features) &&
				p[1].ID != "" && assert.ObjectsAreEqual([]string{"Sauna"}, p[1].Features)
		})).Return(nil).Once()
		cache.On("Invalidate", mock.Anything, cacheKey).Return(nil).Once()

		got, err := New(repo, cache, NewNoopLogger()).SaveAll(context.Background(), []models.DummyPackage{
			{ID: "p1", Name: " Gold ", Price: "1500", DurationMonths: 3, FeaturesText: " Gym, ,Pool "},
			{Name: "Spa", DurationMonths: 1, Features: []string{" Sauna ", ""}},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Gold", got[0].Name)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("empty catalogue is allowed", func(t *testing.T) {
		repo, cache := new(RepoMock), new(CacheMock)
		repo.On("SavePackages", mock.Anything, []models.PricingPackage{}).Return(nil).Once()
		cache.On("Invalidate", mock.Anything, cacheKey).Return(nil).Once()

		got, err := New(repo, cache, NewNoopLogger()).SaveAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid package rejects whole save", func(t *testing.T) {
		repo, cache := new(RepoMock), new(CacheMock)

		_, err := New(repo, cache, NewNoopLogger()).SaveAll(context.Background(), []models.DummyPackage{
			{ID: "p1", Name: "Gold", DurationMonths: 3},
			{ID: "p2", Name: "", DurationMonths: 0},
			{ID: "p1", Name: "Copy", DurationMonths: 1},
		})
		verr, ok := validate.As(err)
		require.True(t, ok)
		assert.Equal(t, []string{
			"package 2: field name is a required field",
			"package 2: field duration_months must be at least 1",
			"package 3: duplicate id p1",
		}, verr.Messages)
		repo.AssertNotCalled(t, "SavePackages", mock.Anything, mock.Anything)
	})
}
