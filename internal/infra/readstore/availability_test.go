//go:build unit

package readstore

import (
	"context"
	"testing"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/infra"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/tests/common/builder"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityReadQueries struct {
	mock.Mock
}

func (m *MockAvailabilityReadQueries) GetAvailabilityDaysForStay(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAvailabilityDaysForStayParams) ([]sqlc.AvailabilityDays, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.AvailabilityDays), args.Error(1)
}

func (m *MockAvailabilityReadQueries) ListAvailabilityDays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailabilityDaysParams) ([]sqlc.AvailabilityDays, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.AvailabilityDays), args.Error(1)
}

func TestAvailabilityReadStore_Window(t *testing.T) {
	lb := builder.NewListingBuilder()
	from := builder.Date("2026-02-01")

	tests := []struct {
		name     string
		window   availability.Window
		wantFrom pgtype.Date
		wantTo   pgtype.Date
	}{
		{
			name:     "bounded window",
			window:   availability.Window{From: &from, To: &from},
			wantFrom: pgconv.DateToPgtype(from),
			wantTo:   pgconv.DateToPgtype(from),
		},
		{
			name:     "open window passes NULL bounds",
			window:   availability.Window{},
			wantFrom: pgtype.Date{},
			wantTo:   pgtype.Date{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override := pgtype.Int8{Int64: 4200, Valid: true}
			mockQueries := new(MockAvailabilityReadQueries)
			mockQueries.On("ListAvailabilityDays", mock.Anything, mock.Anything, sqlc.ListAvailabilityDaysParams{
				ListingID: lb.ID,
				FromDay:   tt.wantFrom,
				ToDay:     tt.wantTo,
				RowLimit:  availability.MaxDaysPerRequest,
			}).Return([]sqlc.AvailabilityDays{
				{ListingID: lb.ID, Day: pgconv.DateToPgtype(from), IsAvailable: true, PriceOverride: override},
			}, nil)

			days, err := NewAvailabilityReadStore(mockQueries, nil).Window(context.Background(), lb.ID, tt.window)

			require.NoError(t, err)
			require.Len(t, days, 1)
			require.NotNil(t, days[0].PriceOverride())
			assert.Equal(t, int64(4200), *days[0].PriceOverride())
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestAvailabilityReadStore_ForStay(t *testing.T) {
	b := builder.NewBookingBuilder()
	mockQueries := new(MockAvailabilityReadQueries)
	mockQueries.On("GetAvailabilityDaysForStay", mock.Anything, mock.Anything, mock.Anything).
		Return([]sqlc.AvailabilityDays(nil), assert.AnError)

	_, err := NewAvailabilityReadStore(mockQueries, nil).ForStay(context.Background(), b.ListingID, b.Stay())

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
