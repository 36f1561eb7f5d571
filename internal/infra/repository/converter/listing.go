package converter

import (
	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/listing"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
)

func ListingToInfra(l *listing.Listing) sqlc.CreateListingParams {
	return sqlc.CreateListingParams{
		ID:             l.ID(),
		OwnerID:        l.OwnerID(),
		Title:          l.Title(),
		Status:         l.Status().String(),
		BasePrice:      l.BasePrice(),
		Currency:       l.Currency(),
		CapacityGuests: pgconv.IntToInt32(l.CapacityGuests()),
	}
}

func ListingFromInfra(row sqlc.Listings) *listing.Listing {
	return listing.ReconstructListing(
		row.ID,
		row.OwnerID,
		row.Title,
		listing.Status(row.Status),
		row.BasePrice,
		row.Currency,
		int(row.CapacityGuests),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func DayToInfra(d availability.Day) sqlc.UpsertAvailabilityDayParams {
	return sqlc.UpsertAvailabilityDayParams{
		ListingID:     d.ListingID(),
		Day:           pgconv.DateToPgtype(d.Date()),
		IsAvailable:   d.IsAvailable(),
		PriceOverride: pgconv.Int8PtrToPgtype(d.PriceOverride()),
	}
}

func DaysFromInfra(rows []sqlc.AvailabilityDays) []availability.Day {
	days := make([]availability.Day, len(rows))
	for i, row := range rows {
		days[i] = availability.ReconstructDay(
			row.ListingID,
			pgconv.DateFromPgtype(row.Day),
			row.IsAvailable,
			pgconv.Int8PtrFromPgtype(row.PriceOverride),
			pgconv.TimeFromPgtype(row.UpdatedAt),
		)
	}
	return days
}
