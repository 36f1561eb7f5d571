//go:build unit || e2e

package builder

import (
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/listing"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	Status         listing.Status
	BasePrice      int64
	Currency       string
	CapacityGuests int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now()
	return &ListingBuilder{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Title:          "Seaside loft",
		Status:         listing.StatusPublished,
		BasePrice:      3000,
		Currency:       "USD",
		CapacityGuests: 4,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.ReconstructListing(b.ID, b.OwnerID, b.Title, b.Status, b.BasePrice, b.Currency, b.CapacityGuests, b.CreatedAt, b.UpdatedAt)
}

// BuildCalendar returns n available days starting at start, without overrides.
func (b *ListingBuilder) BuildCalendar(start time.Time, n int) []availability.Day {
	first := availability.NormalizeDate(start)
	days := make([]availability.Day, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, availability.ReconstructDay(b.ID, first.AddDate(0, 0, i), true, nil, b.UpdatedAt))
	}
	return days
}

func (b *ListingBuilder) WithOwnerID(ownerID uuid.UUID) *ListingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ListingBuilder) WithStatus(status listing.Status) *ListingBuilder {
	b.Status = status
	return b
}

func (b *ListingBuilder) WithBasePrice(price int64) *ListingBuilder {
	b.BasePrice = price
	return b
}

func (b *ListingBuilder) WithCapacity(guests int) *ListingBuilder {
	b.CapacityGuests = guests
	return b
}

func (b *ListingBuilder) AsDraft() *ListingBuilder {
	b.Status = listing.StatusDraft
	return b
}

// Date parses a YYYY-MM-DD literal as midnight UTC and panics on bad input.
func Date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
