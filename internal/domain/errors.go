package domain

import "errors"

var (
	// ErrDuplicateID is returned when an insert collides with a stored account.
	ErrDuplicateID = errors.New("account id already exists")

	// ErrAccountNotFound is returned when no stored account has the requested id.
	ErrAccountNotFound = errors.New("account not found")
)
