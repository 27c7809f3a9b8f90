package auth

import (
	"context"

	"tracker/pkg/logger"
)

// Sessions отдает почту владельца живой сессии по токену.
type Sessions interface {
	Identity(ctx context.Context, token string) (string, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
