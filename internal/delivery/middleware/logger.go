package middleware

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "pricing/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs HTTP requests. Failed requests and catalog mutations are always
// logged; everything else only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	skip   map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, debug bool) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  debug,
		skip:   map[string]struct{}{"/health": {}},
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.skip[c.Request().URL.Path]; ok {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if m.shouldLog(c, err) {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) shouldLog(c echo.Context, err error) bool {
	if m.debug || err != nil {
		return true
	}
	if c.Response().Status >= http.StatusBadRequest {
		return true
	}

	switch c.Request().Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}

	return false
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if operatorID, ok := deliverycontext.GetOperatorIDFromContext(req.Context()); ok {
		fields = append(fields, slog.String("operator_id", operatorID.String()))
	}
	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if res.Status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
