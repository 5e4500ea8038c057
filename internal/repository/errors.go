// Package repository defines the data access layer and the sentinel error
// values shared across repositories. The sentinels let handlers translate
// failure scenarios into the right HTTP responses without inspecting
// database error strings.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a referenced entity does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registration or a profile update collides
// with an existing email address. Handlers translate this into HTTP 400.
var ErrEmailExists = errors.New("email already exists")

// ErrSeatUnavailable is returned when a booking requests seats that are
// already sold or exceed the show's remaining capacity. The reservation
// transaction is rolled back with no state change. Handlers translate this
// into HTTP 409.
var ErrSeatUnavailable = errors.New("seats unavailable")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// isDuplicateKey reports whether err is a MySQL duplicate-key violation
// (error 1062). Unique constraints back both email uniqueness and the
// one-sale-per-seat guarantee, so this check appears on the hot paths.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
