package response

import (
	"time"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/quota"
	"stay-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"ownerId"`
	Title          string    `json:"title"`
	Status         string    `json:"status" copier:"-"`
	BasePrice      int64     `json:"basePrice"`
	Currency       string    `json:"currency"`
	CapacityGuests int       `json:"capacityGuests"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateListingResponse struct {
	Listing    *ListingResponse         `json:"listing"`
	Quota      QuotaReservationResponse `json:"quota"`
	SeededDays int64                    `json:"seededDays"`
}

// FromListing copies through the aggregate's getter methods.
func FromListing(l *listing.Listing) (*ListingResponse, error) {
	resp := &ListingResponse{}
	if err := copier.Copy(resp, l); err != nil {
		return nil, err
	}
	resp.Status = string(l.Status())
	return resp, nil
}

func FromCreateListingResult(r *commands.CreateListingResult) (*CreateListingResponse, error) {
	l, err := FromListing(r.Listing)
	if err != nil {
		return nil, err
	}
	return &CreateListingResponse{
		Listing:    l,
		Quota:      FromReservation(r.Quota),
		SeededDays: r.SeededDays,
	}, nil
}

type QuotaReservationResponse struct {
	UsedBefore int  `json:"usedBefore"`
	UsedAfter  int  `json:"usedAfter"`
	Limit      int  `json:"limit"`
	Granted    bool `json:"granted"`
}

func FromReservation(r quota.Reservation) QuotaReservationResponse {
	return QuotaReservationResponse{
		UsedBefore: r.UsedBefore,
		UsedAfter:  r.UsedAfter,
		Limit:      r.Limit,
		Granted:    r.Granted(),
	}
}
