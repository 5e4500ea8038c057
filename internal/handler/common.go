package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

var errBadID = errors.New("invalid id parameter")

// pathID parses a numeric path parameter. Zero is rejected because no
// row ever has id 0.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errBadID
	}
	return id, nil
}

// caller returns the authenticated user's id and whether they are an
// admin. The middleware guarantees both context keys are set on
// protected routes.
func caller(c echo.Context) (uint64, bool) {
	id, _ := c.Get(middleware.CtxUserID).(uint64)
	role, _ := c.Get(middleware.CtxRole).(string)
	return id, role == model.RoleAdmin
}
