package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists or lost a race
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrInvalidIdentifier will throw if an actor or target reference is malformed
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrInvalidOperation will throw if the action is not allowed on the given state
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrForbidden will throw if the actor may not touch the resource
	ErrForbidden = errors.New("forbidden")
)

// Error kinds reported to clients.
const (
	KindInvalidIdentifier = "InvalidIdentifier"
	KindNotFound          = "NotFound"
	KindInvalidOperation  = "InvalidOperation"
	KindConflict          = "Conflict"
	KindForbidden         = "Forbidden"
	KindInternal          = "Internal"
)

// ErrorKind classifies err into one of the public error kinds.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidIdentifier):
		return KindInvalidIdentifier
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidOperation), errors.Is(err, ErrBadParamInput):
		return KindInvalidOperation
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}
