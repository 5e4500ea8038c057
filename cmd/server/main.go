package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/database"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Nil when Redis is down or unconfigured; rate limiting and response
	// caching then pass requests straight through.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	cities := repository.NewCityRepo(db)
	theatres := repository.NewTheatreRepo(db)
	screens := repository.NewScreenRepo(db)
	movies := repository.NewMovieRepo(db)
	shows := repository.NewShowRepo(db)
	reviews := repository.NewReviewRepo(db)
	bookings := repository.NewBookingRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.Register(e, router.Deps{
		Cfg:      cfg,
		RateCfg:  config.LoadRateLimitConfig(),
		CacheCfg: config.LoadCacheConfig(),
		Redis:    rdb,
		Auth:     handler.NewAuthHandler(cfg, users),
		Users:    handler.NewUserHandler(users),
		Bookings: handler.NewBookingHandler(bookings, shows),
		Cities:   handler.NewCityHandler(cities),
		Theatres: handler.NewTheatreHandler(theatres),
		Screens:  handler.NewScreenHandler(screens),
		Movies:   handler.NewMovieHandler(movies),
		Shows:    handler.NewShowHandler(shows),
		Reviews:  handler.NewReviewHandler(reviews),
	})

	// Background consumer for booking.confirmed events; it reconnects on
	// its own and never takes the API down with it.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
