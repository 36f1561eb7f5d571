//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingViewQueries struct {
	mock.Mock
}

func (m *MockBookingViewQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) HasOverlappingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.HasOverlappingBookingParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingViewQueries) ListGuestBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGuestBookingsFirstPageParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) ListGuestBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGuestBookingsKeysetParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) ListHostBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHostBookingsFirstPageParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockBookingViewQueries) ListHostBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHostBookingsKeysetParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func bookingRow(t *testing.T, b *builder.BookingBuilder) sqlc.Bookings {
	t.Helper()
	domain := b.BuildDomain()
	params, err := converter.BookingToInfra(domain)
	require.NoError(t, err)
	return sqlc.Bookings{
		ID:             params.ID,
		ListingID:      params.ListingID,
		GuestID:        params.GuestID,
		HostID:         params.HostID,
		CheckIn:        params.CheckIn,
		CheckOut:       params.CheckOut,
		GuestsCount:    params.GuestsCount,
		TotalPrice:     params.TotalPrice,
		Currency:       params.Currency,
		Status:         params.Status,
		PriceBreakdown: params.PriceBreakdown,
		Version:        domain.Version(),
		CreatedAt:      pgconv.TimeToPgtype(domain.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(domain.UpdatedAt()),
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	b := builder.NewBookingBuilder()
	row := bookingRow(t, b)

	tests := []struct {
		name       string
		mockReturn sqlc.Bookings
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success - view carries breakdown", mockReturn: row},
		{name: "booking not found", mockReturn: sqlc.Bookings{}, mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockReturn: sqlc.Bookings{}, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingViewQueries)
			mockQueries.On("GetBookingByID", mock.Anything, mock.Anything, b.ID).Return(tt.mockReturn, tt.mockError)

			view, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), b.ID)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, b.ID, view.ID)
				assert.Equal(t, "PENDING", view.Status)
				assert.Len(t, view.Nightly, 3)
				assert.Equal(t, int64(9000), view.TotalPrice)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingReadStore_HasOverlap(t *testing.T) {
	b := builder.NewBookingBuilder()
	mockQueries := new(MockBookingViewQueries)
	mockQueries.On("HasOverlappingBooking", mock.Anything, mock.Anything, sqlc.HasOverlappingBookingParams{
		ListingID: b.ListingID,
		CheckIn:   pgconv.DateToPgtype(b.CheckIn),
		CheckOut:  pgconv.DateToPgtype(b.CheckOut),
	}).Return(true, nil)

	overlap, err := NewBookingReadStore(mockQueries, nil).HasOverlap(context.Background(), b.ListingID, b.Stay())

	require.NoError(t, err)
	assert.True(t, overlap)
	mockQueries.AssertExpectations(t)
}

func TestBookingReadStore_FindByHostKeyset(t *testing.T) {
	hostID := uuid.New()
	lastAt := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	lastID := uuid.New()
	rows := []sqlc.Bookings{
		bookingRow(t, builder.NewBookingBuilder().WithHostID(hostID)),
		bookingRow(t, builder.NewBookingBuilder().WithHostID(hostID)),
	}

	mockQueries := new(MockBookingViewQueries)
	mockQueries.On("ListHostBookingsKeyset", mock.Anything, mock.Anything, sqlc.ListHostBookingsKeysetParams{
		HostID:    hostID,
		CreatedAt: pgconv.TimeToPgtype(lastAt),
		ID:        lastID,
		RowLimit:  21,
	}).Return(rows, nil)

	views, err := NewBookingReadStore(mockQueries, nil).FindByHostKeyset(context.Background(), hostID, lastAt, lastID, 21)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, hostID, views[0].HostID)
	mockQueries.AssertExpectations(t)
}

func TestBookingReadStore_CorruptRow(t *testing.T) {
	row := bookingRow(t, builder.NewBookingBuilder())
	row.Status = "archived"
	mockQueries := new(MockBookingViewQueries)
	mockQueries.On("ListGuestBookingsFirstPage", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.Bookings{row}, nil)

	_, err := NewBookingReadStore(mockQueries, nil).FindByGuestFirstPage(context.Background(), row.GuestID, 10)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
