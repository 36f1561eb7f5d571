package request

import (
	"strings"

	"stay-booking/internal/usecase/commands"
)

type CreateListingRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	BasePrice      int64  `json:"basePrice" binding:"required,min=1"`
	Currency       string `json:"currency" binding:"required,len=3"`
	CapacityGuests int    `json:"capacityGuests" binding:"required,min=1"`
	Publish        bool   `json:"publish"`
}

func (r CreateListingRequest) ToCommand() commands.CreateListingRequest {
	return commands.CreateListingRequest{
		Title:          strings.TrimSpace(r.Title),
		BasePrice:      r.BasePrice,
		Currency:       strings.ToUpper(r.Currency),
		CapacityGuests: r.CapacityGuests,
		Publish:        r.Publish,
	}
}
