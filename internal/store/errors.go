package store

import "errors"

var (
	ErrDuplicateIdentity  = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("required field is missing or malformed")
	ErrInvalidDateRange   = errors.New("end date is before start date")
	ErrNotFound           = errors.New("itinerary not found")
	ErrForbidden          = errors.New("itinerary belongs to another user")
	ErrUserNotFound       = errors.New("user not found")
)
