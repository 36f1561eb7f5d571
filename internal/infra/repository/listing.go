package repository

import (
	"context"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.Listings, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (*listing.Listing, error) {
	row, err := r.queries.CreateListing(ctx, tx, converter.ListingToInfra(l))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return converter.ListingFromInfra(row), nil
}
