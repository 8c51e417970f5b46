package apperrors

import (
	"database/sql"
	"errors"
	"fmt"
)

// The error taxonomy returned by the core services. Handlers map these onto
// HTTP statuses; repositories translate low level store errors into them so
// driver errors never leak to callers.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrForbidden        = errors.New("operation not permitted")
	ErrInvalidState     = errors.New("resource is not in a valid state for this operation")
	ErrConflict         = errors.New("conflicting resource already exists")
	ErrNoSeatsAvailable = errors.New("no seats available")
	ErrSelfBooking      = errors.New("drivers cannot book their own trip")
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrValidation       = errors.New("validation failed")
	ErrStorage          = errors.New("storage failure")
)

// Validationf wraps ErrValidation with a caller facing detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// Storage translates a raw store error into the taxonomy. sql.ErrNoRows
// becomes ErrNotFound; anything else is wrapped as ErrStorage with the
// operation name for context.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

// IsTaxonomy reports whether err belongs to the public taxonomy (as opposed
// to an untranslated internal error).
func IsTaxonomy(err error) bool {
	for _, sentinel := range []error{
		ErrNotFound, ErrForbidden, ErrInvalidState, ErrConflict,
		ErrNoSeatsAvailable, ErrSelfBooking, ErrRateLimited,
		ErrValidation, ErrStorage,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
