package api

import (
	"net/http"
	"time"

	"stay-booking/internal/domain/booking"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthenticated = errs.New("authenticated user missing from context")
	errInvalidID       = errs.New("invalid id")
)

// bookingReasons are the user-facing failure reasons, checked in order.
var bookingReasons = []struct {
	err    error
	reason string
}{
	{booking.ErrOverlap, "overlap"},
	{booking.ErrCalendarUnavailable, "calendar"},
	{booking.ErrInvalidRange, "invalid range"},
	{booking.ErrNotBookable, "not bookable"},
	{booking.ErrCapacityExceeded, "capacity"},
	{booking.ErrInvalidTransition, "invalid transition"},
}

// abortWithUseCaseError maps the error categories to HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, errs.Cause(err).Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, forbiddenMessage(err), nil)
	case errs.Is(err, errs.ErrTransientConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, errs.Cause(err).Error(), gin.H{"retryable": true})
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validationDetail(err))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func forbiddenMessage(err error) string {
	if errs.Is(err, booking.ErrNotHost) || errs.Is(err, booking.ErrNotParticipant) {
		return "Forbidden"
	}
	return errs.Cause(err).Error()
}

// maxEchoedGapNights caps detail.nights; the earliest missing nights are kept.
const maxEchoedGapNights = 31

func validationDetail(err error) gin.H {
	for _, r := range bookingReasons {
		if !errs.Is(err, r.err) {
			continue
		}
		detail := gin.H{"reason": r.reason}
		var gap *booking.CalendarGapError
		if errs.As(err, &gap) {
			missing := gap.Nights
			if len(missing) > maxEchoedGapNights {
				missing = missing[:maxEchoedGapNights]
			}
			nights := make([]string, len(missing))
			for i, n := range missing {
				nights[i] = n.Format(time.DateOnly)
			}
			detail["nights"] = nights
		}
		return detail
	}
	return gin.H{"reason": errs.Cause(err).Error()}
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return id, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, errInvalidID.Error()), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
