package availability

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	// SeedWindowDays is the size of the available calendar created with a new listing.
	SeedWindowDays = 90
	// MaxDaysPerRequest bounds both list results and upsert batches.
	MaxDaysPerRequest = 366
)

var (
	ErrInvalidDate          = errors.New("invalid calendar date")
	ErrInvalidPriceOverride = errors.New("price override must be positive")
	ErrEmptyPatch           = errors.New("at least one calendar item is required")
	ErrTooManyDays          = errors.New("too many calendar items")
	ErrInvalidWindow        = errors.New("from must not be after to")
)

// NormalizeDate converts t to UTC and drops the time of day.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

type Day struct {
	listingID     uuid.UUID
	date          time.Time
	isAvailable   bool
	priceOverride *int64
	updatedAt     time.Time
}

func NewDay(listingID uuid.UUID, date time.Time, isAvailable bool, priceOverride *int64) (Day, error) {
	if date.IsZero() {
		return Day{}, ErrInvalidDate
	}
	if priceOverride != nil && *priceOverride <= 0 {
		return Day{}, ErrInvalidPriceOverride
	}
	return Day{
		listingID:     listingID,
		date:          NormalizeDate(date),
		isAvailable:   isAvailable,
		priceOverride: priceOverride,
	}, nil
}

func ReconstructDay(listingID uuid.UUID, date time.Time, isAvailable bool, priceOverride *int64, updatedAt time.Time) Day {
	return Day{
		listingID:     listingID,
		date:          NormalizeDate(date),
		isAvailable:   isAvailable,
		priceOverride: priceOverride,
		updatedAt:     updatedAt,
	}
}

func (d Day) ListingID() uuid.UUID   { return d.listingID }
func (d Day) Date() time.Time        { return d.date }
func (d Day) IsAvailable() bool      { return d.isAvailable }
func (d Day) PriceOverride() *int64  { return d.priceOverride }
func (d Day) UpdatedAt() time.Time   { return d.updatedAt }
func (d Day) HasPriceOverride() bool { return d.priceOverride != nil }

// NightlyPrice is the override when the day is available and has one, otherwise base.
func (d Day) NightlyPrice(base int64) int64 {
	if d.isAvailable && d.priceOverride != nil {
		return *d.priceOverride
	}
	return base
}

type Patch struct {
	Date          time.Time
	IsAvailable   bool
	PriceOverride *int64
}

// NormalizePatches validates items and returns one day per distinct date in
// ascending order. Later items win over earlier ones for the same date.
func NormalizePatches(listingID uuid.UUID, items []Patch) ([]Day, error) {
	if len(items) == 0 {
		return nil, ErrEmptyPatch
	}
	if len(items) > MaxDaysPerRequest {
		return nil, ErrTooManyDays
	}

	byDate := make(map[time.Time]Day, len(items))
	for _, it := range items {
		day, err := NewDay(listingID, it.Date, it.IsAvailable, it.PriceOverride)
		if err != nil {
			return nil, err
		}
		byDate[day.date] = day
	}

	days := make([]Day, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })
	return days, nil
}

// Window is an optional inclusive date bound for calendar reads.
type Window struct {
	From *time.Time
	To   *time.Time
}

func NewWindow(from, to *time.Time) (Window, error) {
	var w Window
	if from != nil {
		f := NormalizeDate(*from)
		w.From = &f
	}
	if to != nil {
		t := NormalizeDate(*to)
		w.To = &t
	}
	if w.From != nil && w.To != nil && w.From.After(*w.To) {
		return Window{}, ErrInvalidWindow
	}
	return w, nil
}

// Span returns the inclusive window covering days, which must be sorted.
func Span(days []Day) Window {
	if len(days) == 0 {
		return Window{}
	}
	from := days[0].date
	to := days[len(days)-1].date
	return Window{From: &from, To: &to}
}
