package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
)

// registerBookingRoutes mounts the booking engine under /api/bookings.
// Everything here requires a valid access token; per-booking ownership
// is checked in the handlers because it needs the loaded row.
func registerBookingRoutes(api *echo.Group, d Deps) {
	bookings := api.Group("/bookings")
	bookings.Use(middleware.JWTAuth(d.Cfg.AccessSecret))

	bookings.POST("", d.Bookings.Create)
	bookings.GET("/:id", d.Bookings.Get)
	bookings.PUT("/:id/cancel", d.Bookings.Cancel)
	bookings.GET("/user/:userId", d.Bookings.ListForUser)
}
