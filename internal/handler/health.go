package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness for load balancers and monitoring.
func Health(c echo.Context) error {
	return ok(c, http.StatusOK, echo.Map{"status": "ok"})
}
