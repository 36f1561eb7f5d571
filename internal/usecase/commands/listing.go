package commands

import (
	"context"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/quota"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Title          string
	BasePrice      int64
	Currency       string
	CapacityGuests int
	Publish        bool
}

type CreateListingResult struct {
	Listing    *listing.Listing
	Quota      quota.Reservation
	SeededDays int64
}

type ListingCommands interface {
	Create(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error)
}

type listingUseCaseImpl struct {
	uow      shared.UnitOfWork
	quota    QuotaCommands
	clock    clock.Clock
	seedDays int
}

func NewListingUseCase(uow shared.UnitOfWork, quotaCmds QuotaCommands, clk clock.Clock, seedDays int) ListingCommands {
	return &listingUseCaseImpl{
		uow:      uow,
		quota:    quotaCmds,
		clock:    clk,
		seedDays: seedDays,
	}
}

// Create validates first so malformed input never consumes quota.
func (uc *listingUseCaseImpl) Create(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error) {
	l, err := listing.NewListing(ownerID, req.Title, req.BasePrice, req.Currency, req.CapacityGuests, req.Publish)
	if err != nil {
		return nil, invalid(err)
	}

	reservation, err := uc.quota.Reserve(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !reservation.Granted() {
		return nil, ErrQuotaExhausted
	}

	result := &CreateListingResult{Quota: *reservation}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Listings().Create(ctx, tx.DB(), l)
		if derr != nil {
			return derr
		}

		seeded, derr := tx.Availability().Seed(ctx, tx.DB(), created.ID(), clock.Today(uc.clock), uc.seedDays)
		if derr != nil {
			return derr
		}

		event := shared.OutboxEvent{
			Aggregate:   shared.AggregateListing,
			AggregateID: created.ID(),
			Kind:        shared.EventListingCreated,
			OccurredAt:  uc.clock.Now(),
			Payload: shared.ListingEventPayload{
				ListingID: created.ID(),
				OwnerID:   created.OwnerID(),
				Status:    created.Status().String(),
				BasePrice: created.BasePrice(),
				Currency:  created.Currency(),
			},
		}
		if derr = tx.Outbox().Enqueue(ctx, tx.DB(), event); derr != nil {
			return derr
		}

		result.Listing = created
		result.SeededDays = seeded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
