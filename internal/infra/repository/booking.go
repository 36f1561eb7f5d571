package repository

import (
	"context"

	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (sqlc.UpdateBookingStatusRow, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts b. An overlapping active booking surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error) {
	params, err := converter.BookingToInfra(b)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking")
	}

	row, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return booking.ReconstructBooking(
		b.ID(), b.ListingID(), b.GuestID(), b.HostID(),
		b.Stay(),
		b.GuestsCount(),
		b.TotalPrice(),
		b.Currency(),
		b.Status(),
		b.Breakdown(),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// UpdateStatus is a compare-and-swap on (status, version). A lost race returns KindConflict.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) (*booking.Booking, error) {
	params := sqlc.UpdateBookingStatusParams{
		NextStatus:    b.Status().String(),
		ID:            b.ID(),
		CurrentStatus: from.String(),
		Version:       b.Version(),
	}

	row, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking changed concurrently", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}

	return booking.ReconstructBooking(
		b.ID(), b.ListingID(), b.GuestID(), b.HostID(),
		b.Stay(),
		b.GuestsCount(),
		b.TotalPrice(),
		b.Currency(),
		b.Status(),
		b.Breakdown(),
		row.Version,
		b.CreatedAt(),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
