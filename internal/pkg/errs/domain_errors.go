package errs

import "errors"

// Failure categories shared by every use case. Specific sentinels are marked
// with one of these so transport layers can map them without knowing each one.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrTransientConflict = errors.New("transient conflict")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
