// Package handler implements the HTTP endpoints. Every response uses the
// same envelope: successes carry {"success":true, ...payload} and errors
// carry {"success":false, "message":..., "statusCode":...} so clients can
// branch on a single boolean.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

const dbTimeout = 5 * time.Second

// timeoutCtx bounds a request's store work so a stalled database turns
// into a 503 instead of a hung connection.
func timeoutCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// ok writes a success envelope. The payload map is merged into the
// envelope so fields appear at the top level next to "success".
func ok(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// fail writes an error envelope with the given status and message.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"success":    false,
		"message":    message,
		"statusCode": status,
	})
}

// failFromErr maps repository and context errors onto the envelope. A
// deadline exceeded means the store did not answer in time and surfaces
// as 503 rather than a generic 500.
func failFromErr(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrSeatUnavailable):
		return fail(c, http.StatusConflict, "one or more seats are no longer available")
	case errors.Is(err, repository.ErrForbidden):
		return fail(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, repository.ErrEmailExists):
		return fail(c, http.StatusBadRequest, "email already registered")
	case errors.Is(err, context.DeadlineExceeded):
		return fail(c, http.StatusServiceUnavailable, "data store unavailable")
	default:
		return fail(c, http.StatusInternalServerError, "internal server error")
	}
}
