package booking

import (
	"errors"
	"time"

	"stay-booking/internal/domain/listing"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange        = errors.New("invalid range")
	ErrInvalidGuestCount   = errors.New("guest count must be positive")
	ErrCapacityExceeded    = errors.New("capacity")
	ErrNotBookable         = errors.New("not bookable")
	ErrOverlap             = errors.New("overlap")
	ErrCalendarUnavailable = errors.New("calendar")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrNotHost             = errors.New("only the host may confirm this booking")
	ErrNotParticipant      = errors.New("actor is neither guest nor host of this booking")
	ErrInvalidStatus       = errors.New("invalid booking status")
)

type Booking struct {
	id          uuid.UUID
	listingID   uuid.UUID
	guestID     uuid.UUID
	hostID      uuid.UUID
	stay        Stay
	guestsCount int
	totalPrice  int64
	currency    string
	status      Status
	breakdown   PriceBreakdown
	version     int32
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking builds a PENDING booking priced from breakdown. Callers are
// expected to have validated the stay against the calendar already.
func NewBooking(l *listing.Listing, guestID uuid.UUID, stay Stay, guestsCount int, breakdown PriceBreakdown) (*Booking, error) {
	if guestsCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if len(breakdown.Nightly) != stay.NightCount() {
		return nil, ErrInvalidRange
	}
	return &Booking{
		id:          uuid.New(),
		listingID:   l.ID(),
		guestID:     guestID,
		hostID:      l.OwnerID(),
		stay:        stay,
		guestsCount: guestsCount,
		totalPrice:  breakdown.Subtotal,
		currency:    l.Currency(),
		status:      StatusPending,
		breakdown:   breakdown,
	}, nil
}

func ReconstructBooking(
	id, listingID, guestID, hostID uuid.UUID,
	stay Stay,
	guestsCount int,
	totalPrice int64,
	currency string,
	status Status,
	breakdown PriceBreakdown,
	version int32,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		listingID:   listingID,
		guestID:     guestID,
		hostID:      hostID,
		stay:        stay,
		guestsCount: guestsCount,
		totalPrice:  totalPrice,
		currency:    currency,
		status:      status,
		breakdown:   breakdown,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm moves a PENDING booking to CONFIRMED. Only the host may confirm.
func (b *Booking) Confirm(actorID uuid.UUID) error {
	if actorID != b.hostID {
		return ErrNotHost
	}
	return b.transitionTo(StatusConfirmed)
}

// Cancel is allowed for the guest or the host until the booking is canceled.
func (b *Booking) Cancel(actorID uuid.UUID) error {
	if !b.IsParticipant(actorID) {
		return ErrNotParticipant
	}
	return b.transitionTo(StatusCanceled)
}

func (b *Booking) transitionTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) IsParticipant(actorID uuid.UUID) bool {
	return actorID == b.guestID || actorID == b.hostID
}

func (b *Booking) IsActive() bool {
	return b.status.Blocks()
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) ListingID() uuid.UUID      { return b.listingID }
func (b *Booking) GuestID() uuid.UUID        { return b.guestID }
func (b *Booking) HostID() uuid.UUID         { return b.hostID }
func (b *Booking) Stay() Stay                { return b.stay }
func (b *Booking) GuestsCount() int          { return b.guestsCount }
func (b *Booking) TotalPrice() int64         { return b.totalPrice }
func (b *Booking) Currency() string          { return b.currency }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Breakdown() PriceBreakdown { return b.breakdown }
func (b *Booking) Version() int32            { return b.version }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
