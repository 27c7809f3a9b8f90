package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidProductName    = errors.New("invalid product name")
	ErrInvalidCustomerName   = errors.New("invalid customer name")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidBranch         = errors.New("invalid branch")
	ErrInvalidImage          = errors.New("invalid product image")
	ErrSameStatus            = errors.New("status equals the current one")

	ErrDeliveryNotFound = errors.New("delivery not found")
)
