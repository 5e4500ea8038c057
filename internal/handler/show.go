package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// ShowHandler: CRUD for scheduled screenings. Reads join in movie and
// screen summaries so clients can render listings without extra calls.
type ShowHandler struct {
	Shows *repository.ShowRepo
}

func NewShowHandler(shows *repository.ShowRepo) *ShowHandler {
	return &ShowHandler{Shows: shows}
}

type showReq struct {
	MovieID    uint64    `json:"movieId"`
	ScreenID   uint64    `json:"screenId"`
	StartsAt   time.Time `json:"startsAt"`
	PriceCents uint32    `json:"priceCents"`
}

func (h *ShowHandler) Create(c echo.Context) error {
	var req showReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.MovieID == 0 || req.ScreenID == 0 || req.StartsAt.IsZero() {
		return fail(c, http.StatusBadRequest, "movieId, screenId and startsAt are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	s := &model.Show{
		MovieID:    req.MovieID,
		ScreenID:   req.ScreenID,
		StartsAt:   req.StartsAt.UTC(),
		PriceCents: req.PriceCents,
	}
	if err := h.Shows.Create(ctx, s); err != nil {
		return failFromErr(c, err, "screen not found")
	}
	return ok(c, http.StatusCreated, echo.Map{"show": s})
}

func (h *ShowHandler) List(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	shows, err := h.Shows.List(ctx)
	if err != nil {
		return failFromErr(c, err, "shows not found")
	}
	return ok(c, http.StatusOK, echo.Map{"shows": shows})
}

func (h *ShowHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid show id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	s, err := h.Shows.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "show not found")
	}
	return ok(c, http.StatusOK, echo.Map{"show": s})
}

// Update changes schedule and pricing. Seat inventory is out of scope
// here; it moves only through bookings.
func (h *ShowHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid show id")
	}
	var req showReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.MovieID == 0 || req.ScreenID == 0 || req.StartsAt.IsZero() {
		return fail(c, http.StatusBadRequest, "movieId, screenId and startsAt are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	s := &model.Show{
		ID:         id,
		MovieID:    req.MovieID,
		ScreenID:   req.ScreenID,
		StartsAt:   req.StartsAt.UTC(),
		PriceCents: req.PriceCents,
	}
	if err := h.Shows.Update(ctx, s); err != nil {
		return failFromErr(c, err, "show not found")
	}
	detail, err := h.Shows.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "show not found")
	}
	return ok(c, http.StatusOK, echo.Map{"show": detail})
}

func (h *ShowHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid show id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Shows.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "show not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "show deleted"})
}
