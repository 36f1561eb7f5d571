package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID          uuid.UUID          `json:"id"`
	ListingID   uuid.UUID          `json:"listing_id"`
	GuestID     uuid.UUID          `json:"guest_id"`
	HostID      uuid.UUID          `json:"host_id"`
	CheckIn     time.Time          `json:"check_in"`
	CheckOut    time.Time          `json:"check_out"`
	GuestsCount int                `json:"guests_count"`
	TotalPrice  int64              `json:"total_price"`
	Currency    string             `json:"currency"`
	Status      string             `json:"status"`
	Nightly     []NightlyPriceView `json:"nightly"`
	Subtotal    int64              `json:"subtotal"`
	Version     int32              `json:"version"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type NightlyPriceView struct {
	Date  time.Time `json:"date"`
	Price int64     `json:"price"`
}

// AvailabilityDayView represents one stored calendar day
type AvailabilityDayView struct {
	Date          time.Time `json:"date"`
	IsAvailable   bool      `json:"is_available"`
	PriceOverride *int64    `json:"price_override,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// QuotaView represents a user's listing quota
type QuotaView struct {
	UserID uuid.UUID `json:"user_id"`
	Used   int       `json:"used"`
	Limit  int       `json:"limit"`
}
