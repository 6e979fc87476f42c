package handler

import (
	"net/http"

	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Root returns basic API information
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to the Inventory Management API!",
	})
}

// Health verifies database connectivity
func Health(c echo.Context) error {
	if err := database.Ping(c.Request().Context()); err != nil {
		logger.FromContext(c).Error("Health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"status":              "unhealthy",
			"database_connection": "error",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":              "healthy",
		"database_connection": "ok",
	})
}
