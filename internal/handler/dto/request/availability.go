package request

import (
	"time"

	"stay-booking/internal/domain/availability"
)

type AvailabilityItem struct {
	Date          string `json:"date" binding:"required"`
	IsAvailable   *bool  `json:"isAvailable" binding:"required"`
	PriceOverride *int64 `json:"priceOverride,omitempty"`
}

type UpsertAvailabilityRequest struct {
	Items []AvailabilityItem `json:"items" binding:"required,dive"`
}

func (r UpsertAvailabilityRequest) ToPatches() ([]availability.Patch, error) {
	patches := make([]availability.Patch, len(r.Items))
	for i, item := range r.Items {
		date, err := ParseDate(item.Date)
		if err != nil {
			return nil, err
		}
		patches[i] = availability.Patch{
			Date:          date,
			IsAvailable:   *item.IsAvailable,
			PriceOverride: item.PriceOverride,
		}
	}
	return patches, nil
}

type ListAvailabilityQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q ListAvailabilityQuery) Range() (from, to *time.Time, err error) {
	if from, err = parseOptionalDate(q.From); err != nil {
		return nil, nil, err
	}
	if to, err = parseOptionalDate(q.To); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
