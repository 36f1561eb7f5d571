package readstore

import (
	"context"
	"time"

	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	HasOverlappingBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.HasOverlappingBookingParams) (bool, error)
	ListGuestBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGuestBookingsFirstPageParams) ([]sqlc.Bookings, error)
	ListGuestBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGuestBookingsKeysetParams) ([]sqlc.Bookings, error)
	ListHostBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHostBookingsFirstPageParams) ([]sqlc.Bookings, error)
	ListHostBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHostBookingsKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := r.FindEntityByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(b), nil
}

func (r *BookingReadStore) FindEntityByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

// HasOverlap reports whether an active booking intersects [stay.CheckIn, stay.CheckOut).
func (r *BookingReadStore) HasOverlap(ctx context.Context, listingID uuid.UUID, stay booking.Stay) (bool, error) {
	params := sqlc.HasOverlappingBookingParams{
		ListingID: listingID,
		CheckOut:  pgconv.DateToPgtype(stay.CheckOut()),
		CheckIn:   pgconv.DateToPgtype(stay.CheckIn()),
	}
	exists, err := r.queries.HasOverlappingBooking(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingReadStore) FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListGuestBookingsFirstPage(ctx, r.db, sqlc.ListGuestBookingsFirstPageParams{
		GuestID:  guestID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest bookings", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListGuestBookingsKeyset(ctx, r.db, sqlc.ListGuestBookingsKeysetParams{
		GuestID:   guestID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest bookings with keyset", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByHostFirstPage(ctx context.Context, hostID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListHostBookingsFirstPage(ctx, r.db, sqlc.ListHostBookingsFirstPageParams{
		HostID:   hostID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list host bookings", err)
	}
	return toBookingViews(rows)
}

func (r *BookingReadStore) FindByHostKeyset(ctx context.Context, hostID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListHostBookingsKeyset(ctx, r.db, sqlc.ListHostBookingsKeysetParams{
		HostID:    hostID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list host bookings with keyset", err)
	}
	return toBookingViews(rows)
}

func toBookingViews(rows []sqlc.Bookings) ([]*queries.BookingView, error) {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		b, err := converter.BookingFromInfra(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
		}
		result[i] = queries.NewBookingView(b)
	}
	return result, nil
}
