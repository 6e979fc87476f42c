package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FromContext returns the request-scoped logger stored by the request-ID
// middleware. Without one it falls back to the global logger tagged with
// whatever request ID can still be recovered.
func FromContext(c echo.Context) *zap.Logger {
	if logger, ok := c.Get("logger").(*zap.Logger); ok {
		return logger
	}

	requestID, ok := c.Get("request_id").(string)
	if !ok || requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = "unknown"
		}
	}

	return GetLogger().With(zap.String("request_id", requestID))
}
