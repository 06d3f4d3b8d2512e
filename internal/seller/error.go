package seller

import "errors"

var (
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidPostalCode  = errors.New("invalid postal code format")
	ErrAlreadyPending     = errors.New("application is still pending")
	ErrNotFound           = errors.New("application not found")
)
