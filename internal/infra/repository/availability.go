package repository

import (
	"context"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityWriteQueries interface {
	SeedAvailabilityDays(ctx context.Context, db sqlc.DBTX, arg sqlc.SeedAvailabilityDaysParams) (int64, error)
	UpsertAvailabilityDay(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAvailabilityDayParams) error
}

type AvailabilityRepository struct {
	queries AvailabilityWriteQueries
	db      sqlc.DBTX
}

func NewAvailabilityRepository(queries AvailabilityWriteQueries, db sqlc.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{
		queries: queries,
		db:      db,
	}
}

// Seed inserts days available rows starting at start. Existing rows are left untouched.
func (r *AvailabilityRepository) Seed(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, start time.Time, days int) (int64, error) {
	params := sqlc.SeedAvailabilityDaysParams{
		ListingID: listingID,
		StartDay:  pgconv.DateToPgtype(availability.NormalizeDate(start)),
		Days:      pgconv.IntToInt32(days),
	}

	n, err := r.queries.SeedAvailabilityDays(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to seed availability", err)
	}
	return n, nil
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, tx sqlc.DBTX, days []availability.Day) error {
	for _, d := range days {
		if err := r.queries.UpsertAvailabilityDay(ctx, tx, converter.DayToInfra(d)); err != nil {
			return infra.WrapRepoErr("failed to upsert availability day", err)
		}
	}
	return nil
}
