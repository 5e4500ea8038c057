package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// MovieHandler: CRUD for the movie catalog.
type MovieHandler struct {
	Movies *repository.MovieRepo
}

func NewMovieHandler(movies *repository.MovieRepo) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

type movieReq struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	DurationMin uint32 `json:"durationMin"`
	ReleaseDate string `json:"releaseDate"` // "2006-01-02", optional
	Language    string `json:"language"`
}

func (r *movieReq) toModel(id uint64) (*model.Movie, error) {
	m := &model.Movie{
		ID:          id,
		Title:       strings.TrimSpace(r.Title),
		Genre:       strings.TrimSpace(r.Genre),
		DurationMin: r.DurationMin,
		Language:    strings.TrimSpace(r.Language),
	}
	if raw := strings.TrimSpace(r.ReleaseDate); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
		m.ReleaseDate = &t
	}
	return m, nil
}

func (h *MovieHandler) Create(c echo.Context) error {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	m, err := req.toModel(0)
	if err != nil {
		return fail(c, http.StatusBadRequest, "releaseDate must be YYYY-MM-DD")
	}
	if m.Title == "" {
		return fail(c, http.StatusBadRequest, "title is required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Movies.Create(ctx, m); err != nil {
		return failFromErr(c, err, "movie not found")
	}
	return ok(c, http.StatusCreated, echo.Map{"movie": m})
}

func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return failFromErr(c, err, "movies not found")
	}
	return ok(c, http.StatusOK, echo.Map{"movies": movies})
}

func (h *MovieHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid movie id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	m, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "movie not found")
	}
	return ok(c, http.StatusOK, echo.Map{"movie": m})
}

func (h *MovieHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid movie id")
	}
	var req movieReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	m, err := req.toModel(id)
	if err != nil {
		return fail(c, http.StatusBadRequest, "releaseDate must be YYYY-MM-DD")
	}
	if m.Title == "" {
		return fail(c, http.StatusBadRequest, "title is required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Movies.Update(ctx, m); err != nil {
		return failFromErr(c, err, "movie not found")
	}
	return ok(c, http.StatusOK, echo.Map{"movie": m})
}

func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid movie id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Movies.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "movie not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "movie deleted"})
}
