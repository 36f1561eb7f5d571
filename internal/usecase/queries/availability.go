package queries

import (
	"context"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/listing"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ListingLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

type CalendarReadStore interface {
	Window(ctx context.Context, listingID uuid.UUID, window availability.Window) ([]availability.Day, error)
}

type AvailabilityQueries interface {
	List(ctx context.Context, listingID, ownerID uuid.UUID, from, to *time.Time) ([]AvailabilityDayView, error)
}

type availabilityQueriesImpl struct {
	listings ListingLookup
	calendar CalendarReadStore
}

func NewAvailabilityQueries(listings ListingLookup, calendar CalendarReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{listings: listings, calendar: calendar}
}

func (q *availabilityQueriesImpl) List(ctx context.Context, listingID, ownerID uuid.UUID, from, to *time.Time) ([]AvailabilityDayView, error) {
	window, err := availability.NewWindow(from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	l, err := q.listings.FindByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !l.IsOwnedBy(ownerID) {
		return nil, ErrListingAccess
	}

	days, err := q.calendar.Window(ctx, listingID, window)
	if err != nil {
		return nil, err
	}
	return ToDayViews(days), nil
}

func ToDayViews(days []availability.Day) []AvailabilityDayView {
	views := make([]AvailabilityDayView, len(days))
	for i, d := range days {
		views[i] = AvailabilityDayView{
			Date:          d.Date(),
			IsAvailable:   d.IsAvailable(),
			PriceOverride: d.PriceOverride(),
			UpdatedAt:     d.UpdatedAt(),
		}
	}
	return views
}
