//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	"stay-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nightlyPrices(b booking.PriceBreakdown) []int64 {
	out := make([]int64, len(b.Nightly))
	for i, n := range b.Nightly {
		out[i] = n.Price
	}
	return out
}

func TestDefaultNightPricer_Price(t *testing.T) {
	lb := builder.NewListingBuilder().WithBasePrice(3000)
	calendarStart := builder.Date("2026-01-15")

	override := func(days []availability.Day, date string, isAvailable bool, price *int64) []availability.Day {
		target := builder.Date(date)
		for i, d := range days {
			if d.Date().Equal(target) {
				days[i] = availability.ReconstructDay(d.ListingID(), target, isAvailable, price, d.UpdatedAt())
			}
		}
		return days
	}
	p := func(v int64) *int64 { return &v }

	testCases := []struct {
		name             string
		calendar         func() []availability.Day
		checkIn          string
		checkOut         string
		expectedNightly  []int64
		expectedSubtotal int64
	}{
		{
			name:             "all nights at base price",
			calendar:         func() []availability.Day { return lb.BuildCalendar(calendarStart, 90) },
			checkIn:          "2026-02-01",
			checkOut:         "2026-02-05",
			expectedNightly:  []int64{3000, 3000, 3000, 3000},
			expectedSubtotal: 12000,
		},
		{
			name: "override on one night",
			calendar: func() []availability.Day {
				return override(lb.BuildCalendar(calendarStart, 90), "2026-02-03", true, p(5000))
			},
			checkIn:          "2026-02-01",
			checkOut:         "2026-02-05",
			expectedNightly:  []int64{3000, 3000, 5000, 3000},
			expectedSubtotal: 14000,
		},
		{
			name: "override on checkout day is not charged",
			calendar: func() []availability.Day {
				return override(lb.BuildCalendar(calendarStart, 90), "2026-02-05", true, p(9000))
			},
			checkIn:          "2026-02-01",
			checkOut:         "2026-02-05",
			expectedNightly:  []int64{3000, 3000, 3000, 3000},
			expectedSubtotal: 12000,
		},
		{
			name: "override on unavailable day falls back to base",
			calendar: func() []availability.Day {
				return override(lb.BuildCalendar(calendarStart, 90), "2026-02-02", false, p(9000))
			},
			checkIn:          "2026-02-01",
			checkOut:         "2026-02-03",
			expectedNightly:  []int64{3000, 3000},
			expectedSubtotal: 6000,
		},
		{
			name:             "single night",
			calendar:         func() []availability.Day { return lb.BuildCalendar(calendarStart, 90) },
			checkIn:          "2026-02-01",
			checkOut:         "2026-02-02",
			expectedNightly:  []int64{3000},
			expectedSubtotal: 3000,
		},
	}

	pricer := booking.NewDefaultNightPricer()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := booking.NewStay(builder.Date(tc.checkIn), builder.Date(tc.checkOut))
			require.NoError(t, err)

			actual, err := pricer.Price(3000, booking.NewCalendarSnapshot(tc.calendar()), stay)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.expectedNightly, nightlyPrices(actual)); diff != "" {
				t.Errorf("nightly prices mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.expectedSubtotal, actual.Subtotal)
			assert.Equal(t, stay.Nights()[0], actual.Nightly[0].Date)
		})
	}
}

func TestCalendarSnapshot_UnavailableNights(t *testing.T) {
	lb := builder.NewListingBuilder()
	days := lb.BuildCalendar(builder.Date("2026-02-01"), 10)
	days[9] = availability.ReconstructDay(lb.ID, builder.Date("2026-02-10"), false, nil, time.Now())
	snapshot := booking.NewCalendarSnapshot(days)

	t.Run("unavailable night is reported", func(t *testing.T) {
		stay, err := booking.NewStay(builder.Date("2026-02-08"), builder.Date("2026-02-12"))
		require.NoError(t, err)

		gaps := snapshot.UnavailableNights(stay)
		// 02-10 is unavailable, 02-11 is outside the calendar
		assert.Equal(t, []time.Time{builder.Date("2026-02-10"), builder.Date("2026-02-11")}, gaps)
	})

	t.Run("fully covered stay", func(t *testing.T) {
		stay, err := booking.NewStay(builder.Date("2026-02-01"), builder.Date("2026-02-10"))
		require.NoError(t, err)
		assert.Empty(t, snapshot.UnavailableNights(stay))
	})
}
