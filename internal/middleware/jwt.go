package middleware // middleware provides shared request processing for handlers

import (
    "errors"   // sentinel comparisons
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/movie-ticket-booking/internal/utils" // token verification
)

// Context keys populated by the auth middleware for downstream consumers.
const (
    CtxUserID = "user_id"
    CtxEmail  = "email"
    CtxRole   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// injects the caller's identity into the request context.  The provided
// secret must match the one used when issuing access tokens.  Handlers behind
// this middleware read the identity via c.Get(CtxUserID), c.Get(CtxEmail) and
// c.Get(CtxRole).  Requests without a valid token are rejected with 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return unauthenticated(c, "Authorization token is missing")
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims, err := utils.VerifyAccessToken(secret, raw)
            if err != nil {
                // Expired and invalid tokens both end the request with 401;
                // the message tells the client whether a refresh can help.
                if errors.Is(err, utils.ErrTokenExpired) {
                    return unauthenticated(c, "Token expired")
                }
                return unauthenticated(c, "Invalid token")
            }

            c.Set(CtxUserID, claims.UserID)
            c.Set(CtxEmail, claims.Email)
            c.Set(CtxRole, claims.Role)
            return next(c)
        }
    }
}

// OptionalJWTAuth attaches identity when a valid bearer token is present but
// never fails the request.  Endpoints whose behavior degrades gracefully for
// anonymous callers (public catalog reads) use this variant so they can still
// personalize responses for known users.
func OptionalJWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if strings.HasPrefix(auth, "Bearer ") {
                raw := strings.TrimPrefix(auth, "Bearer ")
                if claims, err := utils.VerifyAccessToken(secret, raw); err == nil {
                    c.Set(CtxUserID, claims.UserID)
                    c.Set(CtxEmail, claims.Email)
                    c.Set(CtxRole, claims.Role)
                }
            }
            return next(c)
        }
    }
}

// unauthenticated writes the standard 401 error envelope.
func unauthenticated(c echo.Context, msg string) error {
    return c.JSON(http.StatusUnauthorized, echo.Map{
        "success":    false,
        "message":    msg,
        "statusCode": http.StatusUnauthorized,
    })
}
