package promos

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/dreambody-studio/internal/lib/validate"
	"github.com/magabrotheeeer/dreambody-studio/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) GetPromoCodes(ctx context.Context) ([]models.PromoCode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PromoCode), args.Error(1)
}

func (m *RepoMock) SavePromoCode(ctx context.Context, p models.PromoCode) error {
	return m.Called(ctx, p).Error(0)
}

func (m *RepoMock) DeletePromoCode(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func NewNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

var fixedNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func newService(repo *RepoMock) *Service {
	return New(repo, NewNoopLogger(), WithClock(func() time.Time { return fixedNow }))
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       models.DummyPromoCode
		wantSaved bool
		wantCode  string
		wantDisc  string
		wantLabel string
		wantMsgs  []string
	}{
		{
			name:      "percent code is upper-cased",
			req:       models.DummyPromoCode{Code: " summer10 ", Discount: "10 %", Deadline: "2025-08-31"},
			wantSaved: true,
			wantCode:  "SUMMER10",
			wantDisc:  "10%",
			wantLabel: "10%",
		},
		{
			name:      "fixed amount",
			req:       models.DummyPromoCode{Code: "WELCOME", Discount: "100", Deadline: "2025-08-31"},
			wantSaved: true,
			wantCode:  "WELCOME",
			wantDisc:  "100",
			wantLabel: "100 EGP",
		},
		{
			name:     "missing fields",
			req:      models.DummyPromoCode{},
			wantMsgs: []string{"field code is a required field", "field discount is a required field", "field deadline is a required field"},
		},
		{
			name:     "bad discount and deadline",
			req:      models.DummyPromoCode{Code: "X", Discount: "150%", Deadline: "31-08-2025"},
			wantMsgs: []string{"field discount must be a positive number or a percentage up to 100%", "field deadline must be a date in format YYYY-MM-DD"},
		},
		{
			name:     "blank code",
			req:      models.DummyPromoCode{Code: "   ", Discount: "5", Deadline: "2025-08-31"},
			wantMsgs: []string{"field code is a required field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			if tt.wantSaved {
				repo.On("SavePromoCode", mock.Anything, mock.MatchedBy(func(p models.PromoCode) bool {
					return p.ID != "" && p.Code == tt.wantCode && p.Discount == tt.wantDisc &&
						p.Deadline.Equal(date("2025-08-31"))
				})).Return(nil).Once()
			}

			got, err := newService(repo).Create(context.Background(), tt.req)

			if tt.wantMsgs != nil {
				verr, ok := validate.As(err)
				require.True(t, ok, "expected validation error, got %v", err)
				assert.Equal(t, tt.wantMsgs, verr.Messages)
				repo.AssertNotCalled(t, "SavePromoCode", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, got.DiscountLabel)
			assert.False(t, got.Expired)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_ListExpiry(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetPromoCodes", mock.Anything).Return([]models.PromoCode{
		{ID: "a", Code: "OLD", Discount: "10%", Deadline: date("2025-06-14")},
		{ID: "b", Code: "TODAY", Discount: "10%", Deadline: date("2025-06-15")},
		{ID: "c", Code: "NEXT", Discount: "50", Deadline: date("2025-06-16")},
		{ID: "d", Code: "LEGACY", Discount: "lots", Deadline: date("2025-06-16")},
	}, nil).Once()

	got, err := newService(repo).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.True(t, got[0].Expired)
	assert.False(t, got[1].Expired, "deadline day is still valid")
	assert.False(t, got[2].Expired)
	assert.Equal(t, "fixed", got[2].DiscountKind)
	assert.Equal(t, "50", got[2].DiscountValue)
	assert.Empty(t, got[3].DiscountLabel, "unparsable legacy discount has no label")
}

func TestService_Save(t *testing.T) {
	repo := new(RepoMock)
	repo.On("SavePromoCode", mock.Anything, models.PromoCode{
		ID: "pr1", Code: "SPRING", Discount: "20%", Deadline: date("2025-04-30"),
	}).Return(nil).Once()

	got, err := newService(repo).Save(context.Background(), "pr1", models.DummyPromoCode{
		Code: "spring", Discount: "20%", Deadline: "2025-04-30",
	})
	require.NoError(t, err)
	assert.True(t, got.Expired)
	repo.AssertExpectations(t)
}

func TestService_SaveAcceptsListedDeadline(t *testing.T) {
	stored := models.PromoCode{ID: "pr1", Code: "SUMMER", Discount: "10%", Deadline: date("2025-08-31")}

	repo := new(RepoMock)
	repo.On("GetPromoCodes", mock.Anything).Return([]models.PromoCode{stored}, nil).Once()
	repo.On("SavePromoCode", mock.Anything, stored).Return(nil).Once()
	s := newService(repo)

	listed, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	raw, err := json.Marshal(listed[0])
	require.NoError(t, err)
	var back models.DummyPromoCode
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "2025-08-31T00:00:00Z", back.Deadline)

	got, err := s.Save(context.Background(), "pr1", back)
	require.NoError(t, err)
	assert.True(t, got.Deadline.Equal(date("2025-08-31")))
	assert.False(t, got.Expired)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	repo := new(RepoMock)
	repo.On("DeletePromoCode", mock.Anything, "gone").Return(0, nil).Once()

	require.NoError(t, newService(repo).Delete(context.Background(), "gone"))
}
