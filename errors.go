package canopy

import "errors"

var (
	// ErrCapacity is returned when a fixed-size collection is full.
	ErrCapacity = errors.New("canopy: capacity exceeded")
	// ErrDuplicate is returned when an element is registered twice.
	ErrDuplicate = errors.New("canopy: element already registered")
	// ErrOutOfRange is returned for a row, column or item index outside its bounds.
	ErrOutOfRange = errors.New("canopy: index out of range")
)
