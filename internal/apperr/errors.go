package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrTransition is returned when a delivery-status transition guard fails.
// Distinct from ErrInvalid: the request was well-formed, but the current
// state of the parcel or rider forbids the requested change.
var ErrTransition = errors.New("illegal transition")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthenticated indicates a missing or unverifiable credential.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden indicates the caller lacks the capability for the operation.
var ErrForbidden = errors.New("forbidden")
