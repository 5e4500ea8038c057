package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// registerUserRoutes mounts authentication and account management under
// /api/users. Register, login and refresh are rate limited since they
// are the endpoints worth brute-forcing.
func registerUserRoutes(api *echo.Group, d Deps) {
	users := api.Group("/users")

	limited := users.Group("")
	limited.Use(middleware.RateLimit(d.RateCfg, d.Redis))
	limited.POST("/register", d.Auth.Register)
	limited.POST("/login", d.Auth.Login)
	limited.POST("/refresh", d.Auth.Refresh)

	authed := users.Group("")
	authed.Use(middleware.JWTAuth(d.Cfg.AccessSecret))
	authed.GET("/profile", d.Auth.Profile)
	authed.GET("", d.Users.List, middleware.RequireRole(model.RoleAdmin))
	authed.GET("/:id", d.Users.Get, middleware.RequireSelfOrAdmin("id"))
	authed.PUT("/:id", d.Users.Update, middleware.RequireSelfOrAdmin("id"))
	authed.POST("/:id/change-password", d.Auth.ChangePassword, middleware.RequireSelfOrAdmin("id"))
	authed.DELETE("/:id", d.Users.Delete, middleware.RequireRole(model.RoleAdmin))
}
