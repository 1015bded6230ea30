package scenario

import "errors"

// Domain errors for the scenario package.
var (
	// ErrNoStore is returned when constructing a Store without a blob store.
	ErrNoStore = errors.New("scenario: blob store is required")

	// ErrNoKey is returned when constructing a Store without a storage key.
	ErrNoKey = errors.New("scenario: storage key is required")

	// ErrBadAssumeSeconds is returned when a scenario's assume-for-seconds
	// value is not a non-negative whole number.
	ErrBadAssumeSeconds = errors.New("scenario: assume-for-seconds must be a non-negative whole number")
)
