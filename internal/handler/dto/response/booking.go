package response

import (
	"time"

	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NightlyPriceResponse struct {
	Date  string `json:"date"`
	Price int64  `json:"price"`
}

type PriceBreakdownResponse struct {
	Nightly  []NightlyPriceResponse `json:"nightly"`
	Subtotal int64                  `json:"subtotal"`
}

type BookingResponse struct {
	ID             uuid.UUID              `json:"id"`
	ListingID      uuid.UUID              `json:"listingId"`
	GuestID        uuid.UUID              `json:"guestId"`
	HostID         uuid.UUID              `json:"hostId"`
	CheckIn        string                 `json:"checkIn" copier:"-"`
	CheckOut       string                 `json:"checkOut" copier:"-"`
	GuestsCount    int                    `json:"guestsCount"`
	TotalPrice     int64                  `json:"totalPrice"`
	Currency       string                 `json:"currency"`
	Status         string                 `json:"status"`
	PriceBreakdown PriceBreakdownResponse `json:"priceBreakdown" copier:"-"`
	Version        int32                  `json:"version"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type CreateBookingResponse struct {
	Booking        *BookingResponse `json:"booking"`
	ConversationID *uuid.UUID       `json:"conversationId,omitempty"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	resp := &BookingResponse{}
	if err := copier.Copy(resp, v); err != nil {
		return nil, err
	}
	resp.CheckIn = formatDate(v.CheckIn)
	resp.CheckOut = formatDate(v.CheckOut)
	resp.PriceBreakdown = PriceBreakdownResponse{
		Nightly:  make([]NightlyPriceResponse, len(v.Nightly)),
		Subtotal: v.Subtotal,
	}
	for i, n := range v.Nightly {
		resp.PriceBreakdown.Nightly[i] = NightlyPriceResponse{Date: formatDate(n.Date), Price: n.Price}
	}
	return resp, nil
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) (*BookingListResponse, error) {
	resp := &BookingListResponse{Items: make([]*BookingResponse, len(views))}
	for i, v := range views {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		resp.Items[i] = item
	}
	if next != nil && next.After != "" {
		resp.NextCursor = &next.After
	}
	return resp, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
