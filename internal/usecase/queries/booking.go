package queries

import (
	"context"
	"time"

	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByHostFirstPage(ctx context.Context, hostID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByHostKeyset(ctx context.Context, hostID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actorID uuid.UUID, as booking.Role, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByID is visible to the booking's guest and host only.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.GuestID != actorID && view.HostID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actorID uuid.UUID, as booking.Role, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if !as.IsValid() {
		return nil, nil, ErrInvalidRole
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor == nil || cursor.After == "" {
		if as == booking.RoleHost {
			rows, err = q.store.FindByHostFirstPage(ctx, actorID, int32(limit+1))
		} else {
			rows, err = q.store.FindByGuestFirstPage(ctx, actorID, int32(limit+1))
		}
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		if as == booking.RoleHost {
			rows, err = q.store.FindByHostKeyset(ctx, actorID, lastCreatedAt, lastID, int32(limit+1))
		} else {
			rows, err = q.store.FindByGuestKeyset(ctx, actorID, lastCreatedAt, lastID, int32(limit+1))
		}
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// NewBookingView flattens a booking aggregate for read responses.
func NewBookingView(b *booking.Booking) *BookingView {
	breakdown := b.Breakdown()
	nightly := make([]NightlyPriceView, len(breakdown.Nightly))
	for i, n := range breakdown.Nightly {
		nightly[i] = NightlyPriceView{Date: n.Date, Price: n.Price}
	}
	return &BookingView{
		ID:          b.ID(),
		ListingID:   b.ListingID(),
		GuestID:     b.GuestID(),
		HostID:      b.HostID(),
		CheckIn:     b.Stay().CheckIn(),
		CheckOut:    b.Stay().CheckOut(),
		GuestsCount: b.GuestsCount(),
		TotalPrice:  b.TotalPrice(),
		Currency:    b.Currency(),
		Status:      b.Status().String(),
		Nightly:     nightly,
		Subtotal:    breakdown.Subtotal,
		Version:     b.Version(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}
