package readstore

import (
	"context"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityReadQueries interface {
	GetAvailabilityDaysForStay(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAvailabilityDaysForStayParams) ([]sqlc.AvailabilityDays, error)
	ListAvailabilityDays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailabilityDaysParams) ([]sqlc.AvailabilityDays, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

// ForStay returns the stored days for the nights of stay. Missing nights are simply absent.
func (r *AvailabilityReadStore) ForStay(ctx context.Context, listingID uuid.UUID, stay booking.Stay) ([]availability.Day, error) {
	rows, err := r.queries.GetAvailabilityDaysForStay(ctx, r.db, sqlc.GetAvailabilityDaysForStayParams{
		ListingID: listingID,
		CheckIn:   pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:  pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load calendar for stay", err)
	}
	return converter.DaysFromInfra(rows), nil
}

// Window returns days in [window.From, window.To] ascending, capped at MaxDaysPerRequest.
func (r *AvailabilityReadStore) Window(ctx context.Context, listingID uuid.UUID, window availability.Window) ([]availability.Day, error) {
	rows, err := r.queries.ListAvailabilityDays(ctx, r.db, sqlc.ListAvailabilityDaysParams{
		ListingID: listingID,
		FromDay:   pgconv.DatePtrToPgtype(window.From),
		ToDay:     pgconv.DatePtrToPgtype(window.To),
		RowLimit:  availability.MaxDaysPerRequest,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar", err)
	}
	return converter.DaysFromInfra(rows), nil
}
