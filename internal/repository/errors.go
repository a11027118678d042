package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a unique column (email, CPF, plate)
	// already holds the given value.
	ErrDuplicate = errors.New("entity already exists")
)
