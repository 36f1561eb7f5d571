package commands

import (
	"context"
	"log/slog"

	"stay-booking/internal/domain/quota"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuotaCommands interface {
	// Reserve returns a denied reservation (UsedAfter == UsedBefore) when the limit is reached
	// and ErrQuotaConflict when every compare-and-swap attempt lost to a concurrent writer.
	Reserve(ctx context.Context, userID uuid.UUID) (*quota.Reservation, error)
}

type quotaUseCaseImpl struct {
	uow    shared.UnitOfWork
	limits quota.PlanLimits
}

func NewQuotaUseCase(uow shared.UnitOfWork, limits quota.PlanLimits) QuotaCommands {
	return &quotaUseCaseImpl{uow: uow, limits: limits}
}

func (uc *quotaUseCaseImpl) Reserve(ctx context.Context, userID uuid.UUID) (*quota.Reservation, error) {
	plan, err := uc.uow.CommandReads().UserPlan(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	store := uc.uow.Quota()
	if err = store.Ensure(ctx, userID, uc.limits.LimitFor(plan)); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= quota.MaxReserveAttempts; attempt++ {
		counter, err := store.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !counter.HasCapacity() {
			denied := counter.Deny()
			return &denied, nil
		}

		swapped, err := store.CompareAndSwap(ctx, userID, counter.Used())
		if err != nil {
			return nil, err
		}
		if swapped {
			granted := counter.Grant()
			return &granted, nil
		}

		slog.Debug("quota compare-and-swap lost, retrying",
			"user_id", userID.String(),
			"attempt", attempt)
	}

	slog.Warn("quota reservation gave up after retries",
		"user_id", userID.String(),
		"attempts", quota.MaxReserveAttempts)
	return nil, ErrQuotaConflict
}
