package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedRelease is returned when a record carries a release that
	// the catalog does not know about.
	ErrUnsupportedRelease = errors.New("release is not in the catalog")
	// ErrUnknownArchitecture is returned when a listing advertises an
	// architecture other than amd64 or arm64.
	ErrUnknownArchitecture = errors.New("unknown architecture")
)

// RegionError ties a processing failure to the region it happened in.
type RegionError struct {
	Region string
	Err    error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("region %s: %v", e.Region, e.Err)
}

func (e *RegionError) Unwrap() error {
	return e.Err
}
