package commands

import (
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"
)

var (
	ErrListingNotFound = errs.Mark(errs.New("listing not found"), errs.ErrNotFound)
	ErrListingAccess   = errs.Mark(errs.New("listing not owned by user"), errs.ErrForbidden)
	ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrBookingConflict = errs.Mark(errs.New("booking changed concurrently"), errs.ErrTransientConflict)
	ErrUserNotFound    = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrQuotaConflict   = errs.Mark(errs.New("quota reservation conflict"), errs.ErrTransientConflict)
	ErrQuotaExhausted  = errs.Mark(errs.New("listing quota exhausted"), errs.ErrForbidden)
)

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func forbidden(err error) error {
	return errs.Mark(err, errs.ErrForbidden)
}

// notFoundAs replaces a repository NOT_FOUND with sentinel and passes anything else through.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
