// Package context carries request-scoped values (request ID, logger, operator) from the
// HTTP layer into the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Key is the type of every value this package stores on a context.
type Key string

const (
	KeyRequestID  Key = "request_id"
	KeyLogger     Key = "logger"
	KeyOperatorID Key = "operator_id"

	// HeaderXRequestID carries the request ID in and out of the service.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID records the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID recorded on the echo context, or "" before the
// request ID middleware ran.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// WithRequest stores the request ID and the logger tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, KeyRequestID, requestID)

	return context.WithValue(ctx, KeyLogger, logger.With(slog.String("request_id", requestID)))
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithOperator stores the authenticated operator and tags the request logger with it.
func WithOperator(ctx context.Context, operatorID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, KeyOperatorID, operatorID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("operator_id", operatorID.String())))
	}

	return ctx
}

// GetOperatorIDFromContext returns the operator stored by WithOperator.
func GetOperatorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyOperatorID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger replaces the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
