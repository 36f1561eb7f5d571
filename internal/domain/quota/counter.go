package quota

import (
	"errors"

	"stay-booking/internal/domain/user"

	"github.com/google/uuid"
)

// MaxReserveAttempts is the compare-and-swap budget of a single reservation.
const MaxReserveAttempts = 3

var ErrInvalidLimit = errors.New("quota limit must be positive")

type Counter struct {
	userID uuid.UUID
	used   int
	limit  int
}

func NewCounter(userID uuid.UUID, used, limit int) (Counter, error) {
	if limit <= 0 {
		return Counter{}, ErrInvalidLimit
	}
	if used < 0 {
		used = 0
	}
	return Counter{userID: userID, used: used, limit: limit}, nil
}

func (c Counter) UserID() uuid.UUID { return c.userID }
func (c Counter) Used() int         { return c.used }
func (c Counter) Limit() int        { return c.limit }

func (c Counter) HasCapacity() bool {
	return c.used < c.limit
}

// Deny reports the counter unchanged.
func (c Counter) Deny() Reservation {
	return Reservation{UsedBefore: c.used, UsedAfter: c.used, Limit: c.limit}
}

// Grant reports a successful increment from the counter's current value.
func (c Counter) Grant() Reservation {
	return Reservation{UsedBefore: c.used, UsedAfter: c.used + 1, Limit: c.limit}
}

type Reservation struct {
	UsedBefore int
	UsedAfter  int
	Limit      int
}

func (r Reservation) Granted() bool {
	return r.UsedAfter > r.UsedBefore
}

// PlanLimits maps subscription plans to listing limits.
type PlanLimits struct {
	Free int
	Plus int
	Pro  int
}

// LimitFor falls back to the free tier for unknown plans.
func (p PlanLimits) LimitFor(plan user.Plan) int {
	switch plan {
	case user.PlanPlus:
		return p.Plus
	case user.PlanPro:
		return p.Pro
	default:
		return p.Free
	}
}
