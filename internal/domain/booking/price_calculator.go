package booking

import (
	"time"

	"stay-booking/internal/domain/availability"
)

// CalendarSnapshot is the set of calendar days loaded for one stay.
type CalendarSnapshot struct {
	days map[time.Time]availability.Day
}

func NewCalendarSnapshot(days []availability.Day) CalendarSnapshot {
	m := make(map[time.Time]availability.Day, len(days))
	for _, d := range days {
		m[d.Date()] = d
	}
	return CalendarSnapshot{days: m}
}

func (c CalendarSnapshot) Day(date time.Time) (availability.Day, bool) {
	d, ok := c.days[availability.NormalizeDate(date)]
	return d, ok
}

// UnavailableNights returns the nights of stay that are missing from the
// calendar or marked unavailable. Missing days are never treated as open.
func (c CalendarSnapshot) UnavailableNights(stay Stay) []time.Time {
	var out []time.Time
	for _, night := range stay.Nights() {
		d, ok := c.days[night]
		if !ok || !d.IsAvailable() {
			out = append(out, night)
		}
	}
	return out
}

type NightPricer interface {
	Price(basePrice int64, calendar CalendarSnapshot, stay Stay) (PriceBreakdown, error)
}

type DefaultNightPricer struct{}

func NewDefaultNightPricer() *DefaultNightPricer {
	return &DefaultNightPricer{}
}

func (p *DefaultNightPricer) Price(basePrice int64, calendar CalendarSnapshot, stay Stay) (PriceBreakdown, error) {
	nights := stay.Nights()
	if len(nights) == 0 {
		return PriceBreakdown{}, ErrInvalidRange
	}

	nightly := make([]NightlyPrice, 0, len(nights))
	for _, night := range nights {
		price := basePrice
		if d, ok := calendar.Day(night); ok {
			price = d.NightlyPrice(basePrice)
		}
		nightly = append(nightly, NightlyPrice{Date: night, Price: price})
	}
	return NewPriceBreakdown(nightly), nil
}
