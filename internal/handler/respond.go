package handler

import (
	"errors"
	"net/http"
	"strconv"

	"inventory-service/internal/service"

	"github.com/labstack/echo/v4"
)

// httpStatus maps a service error kind to its transport status.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorJSON writes the service error as a JSON body with the mapped status.
func errorJSON(c echo.Context, err error) error {
	return c.JSON(httpStatus(err), echo.Map{"error": err.Error()})
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parsePage reads the skip/limit query parameters with the API defaults.
func parsePage(c echo.Context) (skip, limit int) {
	skip = 0
	limit = 100
	if v := c.QueryParam("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit
}
