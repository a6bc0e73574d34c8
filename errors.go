package geospatial

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all repository backends.
var (
	// ErrInvalidCoordinate is returned when a latitude or longitude falls
	// outside its valid range. Raised before any write takes place.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidRadius is returned when a negative radius is supplied to a search.
	ErrInvalidRadius = errors.New("invalid radius")

	// ErrNotFound is returned when no node exists for the given id.
	ErrNotFound = errors.New("node not found")

	// ErrStoreUnavailable is returned when an external store cannot be
	// reached or refuses an operation. The underlying cause is retained in
	// the error message; callers decide whether to retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeErr wraps a driver error in ErrStoreUnavailable so callers can
// branch with errors.Is without depending on driver error types.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
