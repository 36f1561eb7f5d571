package booking

import (
	"time"

	"stay-booking/internal/domain/listing"

	"github.com/google/uuid"
)

// CalendarGapError lists the requested nights the calendar does not offer.
type CalendarGapError struct {
	Nights []time.Time
}

func (e *CalendarGapError) Error() string {
	return ErrCalendarUnavailable.Error()
}

func (e *CalendarGapError) Unwrap() error {
	return ErrCalendarUnavailable
}

type Factory struct {
	Pricer NightPricer
}

func NewFactory(pricer NightPricer) *Factory {
	return &Factory{Pricer: pricer}
}

// CreateBooking checks the calendar for stay and prices it.
// The caller runs ValidateListing and the overlap check first, under the listing lock.
func (f *Factory) CreateBooking(
	l *listing.Listing,
	guestID uuid.UUID,
	stay Stay,
	guestsCount int,
	calendar CalendarSnapshot,
) (*Booking, error) {
	if stay.NightCount() == 0 {
		return nil, ErrInvalidRange
	}
	if gaps := calendar.UnavailableNights(stay); len(gaps) > 0 {
		return nil, &CalendarGapError{Nights: gaps}
	}

	breakdown, err := f.Pricer.Price(l.BasePrice(), calendar, stay)
	if err != nil {
		return nil, err
	}
	return NewBooking(l, guestID, stay, guestsCount, breakdown)
}

// ValidateListing checks that l accepts bookings for guestsCount guests.
func ValidateListing(l *listing.Listing, guestsCount int) error {
	if !l.IsBookable() {
		return ErrNotBookable
	}
	if guestsCount <= 0 {
		return ErrInvalidGuestCount
	}
	if !l.Accommodates(guestsCount) {
		return ErrCapacityExceeded
	}
	return nil
}
