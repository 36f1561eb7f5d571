package request

import (
	"strings"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.Mark(errs.New("dates must be YYYY-MM-DD or RFC 3339"), errs.ErrValidation)

type CreateBookingRequest struct {
	ListingID   uuid.UUID `json:"listingId" binding:"required"`
	CheckIn     string    `json:"checkIn" binding:"required"`
	CheckOut    string    `json:"checkOut" binding:"required"`
	GuestsCount int       `json:"guestsCount" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	checkIn, err := ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	checkOut, err := ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	return commands.CreateBookingRequest{
		ListingID:   r.ListingID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestsCount: r.GuestsCount,
	}, nil
}

type ListBookingsQuery struct {
	As     string `form:"as"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp and returns
// midnight UTC of the resulting day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return availability.NormalizeDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "parse date %q", s)
	}
	return availability.NormalizeDate(t), nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
