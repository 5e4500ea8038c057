package middleware

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-ticket-booking/internal/model"
)

// RequireRole returns a middleware that enforces that the authenticated user
// has one of the specified roles.  It assumes JWTAuth has already stored the
// role in the context; a missing identity is reported as 401 and an
// insufficient role as 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get(CtxRole).(string)
            if !ok || role == "" {
                return unauthenticated(c, "Authentication required")
            }
            if !allowed[role] {
                return forbidden(c, "Insufficient permissions")
            }
            return next(c)
        }
    }
}

// RequireSelfOrAdmin returns a middleware that permits the request only when
// the numeric path parameter named by param matches the caller's user ID, or
// when the caller holds the ADMIN role.  It gates the user-scoped endpoints
// (profile updates, password changes, per-user booking listings).
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            userID, ok := c.Get(CtxUserID).(uint64)
            if !ok || userID == 0 {
                return unauthenticated(c, "Authentication required")
            }
            if role, _ := c.Get(CtxRole).(string); role == model.RoleAdmin {
                return next(c)
            }
            target, err := strconv.ParseUint(c.Param(param), 10, 64)
            if err != nil || target != userID {
                return forbidden(c, "You do not have permission to perform this action")
            }
            return next(c)
        }
    }
}

// forbidden writes the standard 403 error envelope.
func forbidden(c echo.Context, msg string) error {
    return c.JSON(http.StatusForbidden, echo.Map{
        "success":    false,
        "message":    msg,
        "statusCode": http.StatusForbidden,
    })
}
