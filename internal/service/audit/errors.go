package audit

import "errors"

var ErrInvalidDeliveryID = errors.New("invalid delivery id")
