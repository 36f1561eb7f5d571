//go:build unit

package availability_test

import (
	"testing"
	"time"

	"stay-booking/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) *int64 { return &v }

func TestNormalizeDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "midnight UTC is unchanged",
			input:    time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "time of day is dropped",
			input:    time.Date(2026, 2, 3, 18, 45, 12, 999, time.UTC),
			expected: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "offset is converted to UTC before truncation",
			input:    time.Date(2026, 2, 3, 5, 0, 0, 0, tokyo),
			expected: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, availability.NormalizeDate(tc.input))
		})
	}
}

func TestNewDay(t *testing.T) {
	listingID := uuid.New()
	date := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	t.Run("success with override", func(t *testing.T) {
		d, err := availability.NewDay(listingID, date, true, price(5000))
		require.NoError(t, err)
		assert.Equal(t, listingID, d.ListingID())
		assert.True(t, d.HasPriceOverride())
		assert.Equal(t, int64(5000), d.NightlyPrice(3000))
	})

	t.Run("unavailable day ignores override for pricing", func(t *testing.T) {
		d, err := availability.NewDay(listingID, date, false, price(5000))
		require.NoError(t, err)
		assert.Equal(t, int64(3000), d.NightlyPrice(3000))
	})

	t.Run("non-positive override is rejected", func(t *testing.T) {
		_, err := availability.NewDay(listingID, date, true, price(0))
		require.ErrorIs(t, err, availability.ErrInvalidPriceOverride)

		_, err = availability.NewDay(listingID, date, true, price(-10))
		require.ErrorIs(t, err, availability.ErrInvalidPriceOverride)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		_, err := availability.NewDay(listingID, time.Time{}, true, nil)
		require.ErrorIs(t, err, availability.ErrInvalidDate)
	})
}

func TestNormalizePatches(t *testing.T) {
	listingID := uuid.New()

	t.Run("dedupes by normalized date, last item wins, sorted ascending", func(t *testing.T) {
		items := []availability.Patch{
			{Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), IsAvailable: false},
			{Date: time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC), IsAvailable: true, PriceOverride: price(4000)},
			{Date: time.Date(2026, 2, 3, 23, 0, 0, 0, time.UTC), IsAvailable: true, PriceOverride: price(5000)},
		}

		days, err := availability.NormalizePatches(listingID, items)
		require.NoError(t, err)
		require.Len(t, days, 2)

		assert.Equal(t, time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), days[0].Date())
		require.NotNil(t, days[0].PriceOverride())
		assert.Equal(t, int64(5000), *days[0].PriceOverride())
		assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), days[1].Date())
		assert.False(t, days[1].IsAvailable())

		span := availability.Span(days)
		assert.Equal(t, days[0].Date(), *span.From)
		assert.Equal(t, days[1].Date(), *span.To)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := availability.NormalizePatches(listingID, nil)
		require.ErrorIs(t, err, availability.ErrEmptyPatch)
	})

	t.Run("too many items", func(t *testing.T) {
		items := make([]availability.Patch, availability.MaxDaysPerRequest+1)
		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range items {
			items[i] = availability.Patch{Date: start.AddDate(0, 0, i), IsAvailable: true}
		}
		_, err := availability.NormalizePatches(listingID, items)
		require.ErrorIs(t, err, availability.ErrTooManyDays)
	})

	t.Run("invalid override fails the whole patch", func(t *testing.T) {
		items := []availability.Patch{
			{Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), IsAvailable: true},
			{Date: time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), IsAvailable: true, PriceOverride: price(0)},
		}
		_, err := availability.NormalizePatches(listingID, items)
		require.ErrorIs(t, err, availability.ErrInvalidPriceOverride)
	})
}

func TestNewWindow(t *testing.T) {
	from := time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := availability.NewWindow(&from, &to)
	require.ErrorIs(t, err, availability.ErrInvalidWindow)

	w, err := availability.NewWindow(&to, &from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), *w.To)

	w, err = availability.NewWindow(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, w.From)
	assert.Nil(t, w.To)
}
