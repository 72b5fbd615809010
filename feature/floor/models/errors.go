package models

import "errors"

var (
	// ErrNotFound is returned when a floor or element does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when an element id is already used on the floor.
	ErrDuplicateID = errors.New("duplicate element id")
	// ErrInvalid is returned when input fails validation.
	ErrInvalid = errors.New("invalid input")
)
