package commands

import (
	"context"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityCommands interface {
	// Upsert applies items in one transaction and returns the stored days of the patched range.
	Upsert(ctx context.Context, listingID, ownerID uuid.UUID, items []availability.Patch) ([]availability.Day, error)
}

type availabilityUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityUseCase(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow}
}

func (uc *availabilityUseCaseImpl) Upsert(ctx context.Context, listingID, ownerID uuid.UUID, items []availability.Patch) ([]availability.Day, error) {
	var stored []availability.Day
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			return notFoundAs(derr, ErrListingNotFound)
		}
		if !l.IsOwnedBy(ownerID) {
			return ErrListingAccess
		}

		days, derr := availability.NormalizePatches(listingID, items)
		if derr != nil {
			return invalid(derr)
		}
		if derr = tx.Availability().Upsert(ctx, tx.DB(), days); derr != nil {
			return derr
		}

		stored, derr = tx.Reads().CalendarWindow(ctx, listingID, availability.Span(days))
		return derr
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}
