//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/commands"
	"stay-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityUseCase_Upsert(t *testing.T) {
	ctx := context.Background()
	lb := builder.NewListingBuilder()
	items := []availability.Patch{
		{Date: builder.Date("2026-02-03"), IsAvailable: true, PriceOverride: int64Ptr(4500)},
		{Date: builder.Date("2026-02-01"), IsAvailable: false},
		{Date: builder.Date("2026-02-03"), IsAvailable: false},
	}

	testCases := []struct {
		name     string
		actor    uuid.UUID
		items    []availability.Patch
		setup    func(f *uowFixture)
		expectIs error
	}{
		{
			name:  "success: duplicates collapse to the last item and the range is returned",
			actor: lb.OwnerID,
			items: items,
			setup: func(f *uowFixture) {
				f.reads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
				f.availability.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, days []availability.Day) error {
						require.Len(t, days, 2)
						assert.Equal(t, builder.Date("2026-02-01"), days[0].Date())
						assert.False(t, days[1].IsAvailable())
						assert.Nil(t, days[1].PriceOverride())
						return nil
					})
				from, to := builder.Date("2026-02-01"), builder.Date("2026-02-03")
				window := availability.Window{From: &from, To: &to}
				f.reads.EXPECT().CalendarWindow(gomock.Any(), lb.ID, window).Return(lb.BuildCalendar(from, 3), nil)
			},
		},
		{
			name:  "error: not the owner",
			actor: uuid.New(),
			items: items,
			setup: func(f *uowFixture) {
				f.reads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
			},
			expectIs: errs.ErrForbidden,
		},
		{
			name:  "error: listing not found",
			actor: lb.OwnerID,
			items: items,
			setup: func(f *uowFixture) {
				f.reads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(nil, notFound())
			},
			expectIs: commands.ErrListingNotFound,
		},
		{
			name:  "error: non-positive price override",
			actor: lb.OwnerID,
			items: []availability.Patch{{Date: builder.Date("2026-02-01"), IsAvailable: true, PriceOverride: int64Ptr(0)}},
			setup: func(f *uowFixture) {
				f.reads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
			},
			expectIs: availability.ErrInvalidPriceOverride,
		},
		{
			name:  "error: empty patch",
			actor: lb.OwnerID,
			items: nil,
			setup: func(f *uowFixture) {
				f.reads.EXPECT().ListingByID(gomock.Any(), lb.ID).Return(lb.BuildDomain(), nil)
			},
			expectIs: errs.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newUoWFixture(ctrl)
			tc.setup(f)

			days, err := commands.NewAvailabilityUseCase(f.uow).Upsert(ctx, lb.ID, tc.actor, tc.items)

			if tc.expectIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectIs), "expected %v in %v", tc.expectIs, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, days, 3)
		})
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}
