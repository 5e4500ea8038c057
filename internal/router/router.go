// Package router wires handlers, middleware and route groups onto the
// Echo instance. All API routes live under /api; /health sits at the
// root for load balancers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
)

// Deps carries everything route registration needs. The Redis client may
// be nil, in which case rate limiting and response caching become
// pass-throughs.
type Deps struct {
	Cfg       config.Config
	RateCfg   config.RateLimitConfig
	CacheCfg  config.CacheConfig
	Redis     *redis.Client
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	Bookings  *handler.BookingHandler
	Cities    *handler.CityHandler
	Theatres  *handler.TheatreHandler
	Screens   *handler.ScreenHandler
	Movies    *handler.MovieHandler
	Shows     *handler.ShowHandler
	Reviews   *handler.ReviewHandler
}

// Register mounts every route on e.
func Register(e *echo.Echo, d Deps) {
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	registerUserRoutes(api, d)
	registerBookingRoutes(api, d)
	registerCatalogRoutes(api, d)
}
