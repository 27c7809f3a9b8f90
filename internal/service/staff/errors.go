package staff

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStaffID        = errors.New("invalid staff id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrStaffNotFound   = errors.New("staff member not found")
	ErrStaffEmailTaken = errors.New("staff email already registered")
)
