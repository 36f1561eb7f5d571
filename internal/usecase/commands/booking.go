package commands

import (
	"context"
	"log/slog"
	"time"

	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// statusWriteAttempts allows one reload after losing a compare-and-swap on status.
const statusWriteAttempts = 2

type CreateBookingRequest struct {
	ListingID   uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	GuestsCount int
}

type CreateBookingResult struct {
	Booking        *booking.Booking
	ConversationID *uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, guestID uuid.UUID) (*CreateBookingResult, error)
	Confirm(ctx context.Context, bookingID, actorID uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow                 shared.UnitOfWork
	factory             *booking.Factory
	clock               clock.Clock
	conversationTimeout time.Duration
}

func NewBookingUseCase(uow shared.UnitOfWork, factory *booking.Factory, clk clock.Clock, conversationTimeout time.Duration) BookingCommands {
	return &bookingUseCaseImpl{
		uow:                 uow,
		factory:             factory,
		clock:               clk,
		conversationTimeout: conversationTimeout,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, guestID uuid.UUID) (*CreateBookingResult, error) {
	stay, err := booking.NewStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, invalid(err)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serializes creation per listing until commit.
		l, derr := tx.Reads().LockListing(ctx, req.ListingID)
		if derr != nil {
			return notFoundAs(derr, ErrListingNotFound)
		}
		if derr = booking.ValidateListing(l, req.GuestsCount); derr != nil {
			return invalid(derr)
		}

		conflict, derr := tx.Reads().HasOverlappingBooking(ctx, l.ID(), stay)
		if derr != nil {
			return derr
		}
		if conflict {
			return invalid(booking.ErrOverlap)
		}

		days, derr := tx.Reads().CalendarForStay(ctx, l.ID(), stay)
		if derr != nil {
			return derr
		}
		b, derr := uc.factory.CreateBooking(l, guestID, stay, req.GuestsCount, booking.NewCalendarSnapshot(days))
		if derr != nil {
			return invalid(derr)
		}

		saved, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return invalid(errs.Mark(derr, booking.ErrOverlap))
			}
			return derr
		}

		if derr = tx.Outbox().Enqueue(ctx, tx.DB(), uc.bookingEvent(shared.EventBookingRequested, saved, guestID)); derr != nil {
			return derr
		}
		created = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &CreateBookingResult{Booking: created}
	if id, ok := uc.openConversation(ctx, created); ok {
		result.ConversationID = &id
	}
	return result, nil
}

// openConversation never fails the booking; errors are logged and dropped.
func (uc *bookingUseCaseImpl) openConversation(ctx context.Context, b *booking.Booking) (uuid.UUID, bool) {
	cctx, cancel := context.WithTimeout(ctx, uc.conversationTimeout)
	defer cancel()

	id, err := uc.uow.Conversations().FindOrCreate(cctx, b.ListingID(), b.GuestID(), b.HostID())
	if err != nil {
		slog.Warn("failed to open booking conversation",
			"booking_id", b.ID().String(),
			"listing_id", b.ListingID().String(),
			"error", err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, bookingID, actorID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, bookingID, actorID, shared.EventBookingConfirmed, func(b *booking.Booking) error {
		return b.Confirm(actorID)
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID) (*booking.Booking, error) {
	return uc.transition(ctx, bookingID, actorID, shared.EventBookingCanceled, func(b *booking.Booking) error {
		return b.Cancel(actorID)
	})
}

func (uc *bookingUseCaseImpl) transition(ctx context.Context, bookingID, actorID uuid.UUID, kind string, apply func(*booking.Booking) error) (*booking.Booking, error) {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for attempt := 0; attempt < statusWriteAttempts; attempt++ {
			b, derr := tx.Reads().BookingByID(ctx, bookingID)
			if derr != nil {
				return notFoundAs(derr, ErrBookingNotFound)
			}

			from := b.Status()
			if derr = apply(b); derr != nil {
				return transitionErr(derr)
			}

			saved, derr := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, from)
			if derr != nil {
				if infra.IsKind(derr, infra.KindConflict) {
					slog.Info("booking status changed concurrently, reloading",
						"booking_id", bookingID.String(),
						"attempt", attempt+1)
					continue
				}
				return derr
			}

			if derr = tx.Outbox().Enqueue(ctx, tx.DB(), uc.bookingEvent(kind, saved, actorID)); derr != nil {
				return derr
			}
			updated = saved
			return nil
		}
		return ErrBookingConflict
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func transitionErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrNotHost), errs.Is(err, booking.ErrNotParticipant):
		return forbidden(err)
	default:
		return invalid(err)
	}
}

func (uc *bookingUseCaseImpl) bookingEvent(kind string, b *booking.Booking, actorID uuid.UUID) shared.OutboxEvent {
	return shared.OutboxEvent{
		Aggregate:   shared.AggregateBooking,
		AggregateID: b.ID(),
		Kind:        kind,
		OccurredAt:  uc.clock.Now(),
		Payload: shared.BookingEventPayload{
			BookingID:  b.ID(),
			ListingID:  b.ListingID(),
			GuestID:    b.GuestID(),
			HostID:     b.HostID(),
			CheckIn:    b.Stay().CheckIn().Format(time.DateOnly),
			CheckOut:   b.Stay().CheckOut().Format(time.DateOnly),
			Status:     b.Status().String(),
			TotalPrice: b.TotalPrice(),
			Currency:   b.Currency(),
			ActorID:    actorID,
		},
	}
}
