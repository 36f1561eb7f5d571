package converter

import (
	"encoding/json"
	"time"

	"stay-booking/internal/domain/booking"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/pkg/pgconv"
)

type breakdownJSON struct {
	Nightly  []nightJSON `json:"nightly"`
	Subtotal int64       `json:"subtotal"`
}

type nightJSON struct {
	Date  string `json:"date"`
	Price int64  `json:"price"`
}

func MarshalBreakdown(b booking.PriceBreakdown) ([]byte, error) {
	out := breakdownJSON{
		Nightly:  make([]nightJSON, len(b.Nightly)),
		Subtotal: b.Subtotal,
	}
	for i, n := range b.Nightly {
		out.Nightly[i] = nightJSON{Date: n.Date.Format(time.DateOnly), Price: n.Price}
	}
	return json.Marshal(out)
}

func UnmarshalBreakdown(raw []byte) (booking.PriceBreakdown, error) {
	if len(raw) == 0 {
		return booking.PriceBreakdown{}, nil
	}
	var in breakdownJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return booking.PriceBreakdown{}, errs.Wrap(err, "decode price breakdown")
	}
	nightly := make([]booking.NightlyPrice, len(in.Nightly))
	for i, n := range in.Nightly {
		d, err := time.Parse(time.DateOnly, n.Date)
		if err != nil {
			return booking.PriceBreakdown{}, errs.Wrapf(err, "decode night %d", i)
		}
		nightly[i] = booking.NightlyPrice{Date: d, Price: n.Price}
	}
	return booking.PriceBreakdown{Nightly: nightly, Subtotal: in.Subtotal}, nil
}

func BookingToInfra(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	breakdown, err := MarshalBreakdown(b.Breakdown())
	if err != nil {
		return sqlc.CreateBookingParams{}, err
	}
	return sqlc.CreateBookingParams{
		ID:             b.ID(),
		ListingID:      b.ListingID(),
		GuestID:        b.GuestID(),
		HostID:         b.HostID(),
		CheckIn:        pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:       pgconv.DateToPgtype(b.Stay().CheckOut()),
		GuestsCount:    pgconv.IntToInt32(b.GuestsCount()),
		TotalPrice:     b.TotalPrice(),
		Currency:       b.Currency(),
		Status:         b.Status().String(),
		PriceBreakdown: breakdown,
	}, nil
}

func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	stay, err := booking.NewStay(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has corrupt stay", row.ID)
	}
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("booking %s has unknown status %q", row.ID, row.Status)
	}
	breakdown, err := UnmarshalBreakdown(row.PriceBreakdown)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID, row.ListingID, row.GuestID, row.HostID,
		stay,
		int(row.GuestsCount),
		row.TotalPrice,
		row.Currency,
		status,
		breakdown,
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
