package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	AggregateBooking = "booking"
	AggregateListing = "listing"

	EventBookingRequested = "booking.requested"
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCanceled  = "booking.canceled"
	EventListingCreated   = "listing.created"
)

// OutboxEvent is written in the same transaction as the change it describes.
type OutboxEvent struct {
	Aggregate   string
	AggregateID uuid.UUID
	Kind        string
	Payload     any
	OccurredAt  time.Time
}

// Topic is the broker topic, before any deployment prefix.
func (e OutboxEvent) Topic() string {
	return e.Aggregate + ".events.v1"
}

type BookingEventPayload struct {
	BookingID  uuid.UUID `json:"bookingId"`
	ListingID  uuid.UUID `json:"listingId"`
	GuestID    uuid.UUID `json:"guestId"`
	HostID     uuid.UUID `json:"hostId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"totalPrice"`
	Currency   string    `json:"currency"`
	ActorID    uuid.UUID `json:"actorId"`
}

type ListingEventPayload struct {
	ListingID uuid.UUID `json:"listingId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Status    string    `json:"status"`
	BasePrice int64     `json:"basePrice"`
	Currency  string    `json:"currency"`
}
