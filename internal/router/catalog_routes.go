package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// registerCatalogRoutes mounts the browse-and-manage surface for cities,
// theatres, screens, movies, shows and reviews. Reads are public and go
// through the response cache; writes require an ADMIN token. Review
// writes are the exception, any authenticated user may post one.
func registerCatalogRoutes(api *echo.Group, d Deps) {
	cache := middleware.ResponseCache(d.CacheCfg, d.Redis)
	optional := middleware.OptionalJWTAuth(d.Cfg.AccessSecret)
	admin := []echo.MiddlewareFunc{
		middleware.JWTAuth(d.Cfg.AccessSecret),
		middleware.RequireRole(model.RoleAdmin),
	}

	cities := api.Group("/cities")
	cities.GET("", d.Cities.List, optional, cache)
	cities.GET("/:id", d.Cities.Get, optional, cache)
	cities.POST("", d.Cities.Create, admin...)
	cities.PUT("/:id", d.Cities.Update, admin...)
	cities.DELETE("/:id", d.Cities.Delete, admin...)

	theatres := api.Group("/theatres")
	theatres.GET("", d.Theatres.List, optional, cache)
	theatres.GET("/:id", d.Theatres.Get, optional, cache)
	theatres.POST("", d.Theatres.Create, admin...)
	theatres.PUT("/:id", d.Theatres.Update, admin...)
	theatres.DELETE("/:id", d.Theatres.Delete, admin...)

	screens := api.Group("/screens")
	screens.GET("", d.Screens.List, optional, cache)
	screens.GET("/:id", d.Screens.Get, optional, cache)
	screens.POST("", d.Screens.Create, admin...)
	screens.PUT("/:id", d.Screens.Update, admin...)
	screens.DELETE("/:id", d.Screens.Delete, admin...)

	movies := api.Group("/movies")
	movies.GET("", d.Movies.List, optional, cache)
	movies.GET("/:id", d.Movies.Get, optional, cache)
	movies.POST("", d.Movies.Create, admin...)
	movies.PUT("/:id", d.Movies.Update, admin...)
	movies.DELETE("/:id", d.Movies.Delete, admin...)

	shows := api.Group("/shows")
	shows.GET("", d.Shows.List, optional, cache)
	shows.GET("/:id", d.Shows.Get, optional, cache)
	shows.POST("", d.Shows.Create, admin...)
	shows.PUT("/:id", d.Shows.Update, admin...)
	shows.DELETE("/:id", d.Shows.Delete, admin...)

	reviews := api.Group("/reviews")
	reviews.GET("/movie/:movieId", d.Reviews.ListByMovie, optional, cache)
	authedReviews := middleware.JWTAuth(d.Cfg.AccessSecret)
	reviews.GET("/user/:userId", d.Reviews.ListByUser, authedReviews)
	reviews.POST("", d.Reviews.Create, authedReviews)
	reviews.PUT("/:id", d.Reviews.Update, authedReviews)
	reviews.DELETE("/:id", d.Reviews.Delete, authedReviews)
}
