package queries

import "stay-booking/internal/pkg/errs"

var (
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingAccess   = errs.Mark(errs.New("booking access denied"), errs.ErrForbidden)
	ErrListingNotFound = errs.Mark(errs.New("listing not found"), errs.ErrNotFound)
	ErrListingAccess   = errs.Mark(errs.New("listing not owned by user"), errs.ErrForbidden)
	ErrUserNotFound    = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrInvalidCursor   = errs.Mark(errs.New("invalid cursor"), errs.ErrValidation)
	ErrInvalidRole     = errs.Mark(errs.New("as must be guest or host"), errs.ErrValidation)
)
