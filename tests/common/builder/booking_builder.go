//go:build unit || e2e

package builder

import (
	"time"

	"stay-booking/internal/domain/booking"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	ListingID   uuid.UUID
	GuestID     uuid.UUID
	HostID      uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	GuestsCount int
	Nightly     int64
	Currency    string
	Status      booking.Status
	Version     int32
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		ListingID:   uuid.New(),
		GuestID:     uuid.New(),
		HostID:      uuid.New(),
		CheckIn:     Date("2026-03-10"),
		CheckOut:    Date("2026-03-13"),
		GuestsCount: 2,
		Nightly:     3000,
		Currency:    "USD",
		Status:      booking.StatusPending,
		Version:     1,
		CreatedAt:   time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) ForListing(l *ListingBuilder) *BookingBuilder {
	b.ListingID = l.ID
	b.HostID = l.OwnerID
	b.Currency = l.Currency
	b.Nightly = l.BasePrice
	return b
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}

func (b *BookingBuilder) WithHostID(id uuid.UUID) *BookingBuilder {
	b.HostID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithVersion(v int32) *BookingBuilder {
	b.Version = v
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = Date(checkIn)
	b.CheckOut = Date(checkOut)
	return b
}

func (b *BookingBuilder) Stay() booking.Stay {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *BookingBuilder) Breakdown() booking.PriceBreakdown {
	nights := b.Stay().Nights()
	nightly := make([]booking.NightlyPrice, len(nights))
	for i, n := range nights {
		nightly[i] = booking.NightlyPrice{Date: n, Price: b.Nightly}
	}
	return booking.NewPriceBreakdown(nightly)
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	breakdown := b.Breakdown()
	return booking.ReconstructBooking(
		b.ID, b.ListingID, b.GuestID, b.HostID,
		b.Stay(), b.GuestsCount, breakdown.Subtotal, b.Currency, b.Status,
		breakdown, b.Version, b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}
