package response

import (
	"time"

	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityDayResponse struct {
	Date          string    `json:"date"`
	IsAvailable   bool      `json:"isAvailable"`
	PriceOverride *int64    `json:"priceOverride,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	ListingID uuid.UUID                 `json:"listingId"`
	Days      []AvailabilityDayResponse `json:"days"`
}

func FromDayViews(listingID uuid.UUID, views []queries.AvailabilityDayView) *AvailabilityResponse {
	days := make([]AvailabilityDayResponse, len(views))
	for i, v := range views {
		days[i] = AvailabilityDayResponse{
			Date:          formatDate(v.Date),
			IsAvailable:   v.IsAvailable,
			PriceOverride: v.PriceOverride,
			UpdatedAt:     v.UpdatedAt,
		}
	}
	return &AvailabilityResponse{ListingID: listingID, Days: days}
}
