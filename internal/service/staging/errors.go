package staging

import "errors"

var (
	ErrStageNotFound  = errors.New("stage not found, expired or already used")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrSameStatus     = errors.New("status equals the current one")
	ErrUnknownStaging = errors.New("unknown staged operation kind")
)
