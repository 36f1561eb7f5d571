package booking

import (
	"fmt"
	"time"

	"stay-booking/internal/domain/availability"
)

// MaxStayNights bounds a single stay, and with it the calendar window a create reads.
const MaxStayNights = availability.MaxDaysPerRequest

// Stay is the half-open night range [checkIn, checkOut).
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := availability.NormalizeDate(checkIn)
	out := availability.NormalizeDate(checkOut)
	if checkIn.IsZero() || checkOut.IsZero() || !out.After(in) {
		return Stay{}, ErrInvalidRange
	}
	if out.After(in.AddDate(0, 0, MaxStayNights)) {
		return Stay{}, ErrInvalidRange
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func (s Stay) CheckIn() time.Time {
	return s.checkIn
}

func (s Stay) CheckOut() time.Time {
	return s.checkOut
}

// Nights lists every occupied night, checkIn through checkOut-1.
func (s Stay) Nights() []time.Time {
	var nights []time.Time
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}

func (s Stay) NightCount() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps reports whether both stays occupy at least one common night.
// A checkout day equal to the other's checkin day does not overlap.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s Stay) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

type NightlyPrice struct {
	Date  time.Time
	Price int64
}

// PriceBreakdown is captured once at creation and never recomputed.
type PriceBreakdown struct {
	Nightly  []NightlyPrice
	Subtotal int64
}

func NewPriceBreakdown(nightly []NightlyPrice) PriceBreakdown {
	var subtotal int64
	for _, n := range nightly {
		subtotal += n.Price
	}
	return PriceBreakdown{Nightly: nightly, Subtotal: subtotal}
}
