package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// ScreenHandler: CRUD for screens. Listing accepts ?theatreId= to scope
// to one theatre.
type ScreenHandler struct {
	Screens *repository.ScreenRepo
}

func NewScreenHandler(screens *repository.ScreenRepo) *ScreenHandler {
	return &ScreenHandler{Screens: screens}
}

type screenReq struct {
	TheatreID    uint64 `json:"theatreId"`
	ScreenNumber uint32 `json:"screenNumber"`
	TotalSeats   uint32 `json:"totalSeats"`
}

func (h *ScreenHandler) Create(c echo.Context) error {
	var req screenReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.TheatreID == 0 || req.ScreenNumber == 0 || req.TotalSeats == 0 {
		return fail(c, http.StatusBadRequest, "theatreId, screenNumber and totalSeats are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	s := &model.Screen{TheatreID: req.TheatreID, ScreenNumber: req.ScreenNumber, TotalSeats: req.TotalSeats}
	if err := h.Screens.Create(ctx, s); err != nil {
		return failFromErr(c, err, "screen not found")
	}
	return ok(c, http.StatusCreated, echo.Map{"screen": s})
}

func (h *ScreenHandler) List(c echo.Context) error {
	var theatreID uint64
	if raw := c.QueryParam("theatreId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid theatreId filter")
		}
		theatreID = id
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	screens, err := h.Screens.List(ctx, theatreID)
	if err != nil {
		return failFromErr(c, err, "screens not found")
	}
	return ok(c, http.StatusOK, echo.Map{"screens": screens})
}

func (h *ScreenHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid screen id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	s, err := h.Screens.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "screen not found")
	}
	return ok(c, http.StatusOK, echo.Map{"screen": s})
}

func (h *ScreenHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid screen id")
	}
	var req screenReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.TheatreID == 0 || req.ScreenNumber == 0 || req.TotalSeats == 0 {
		return fail(c, http.StatusBadRequest, "theatreId, screenNumber and totalSeats are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	s := &model.Screen{ID: id, TheatreID: req.TheatreID, ScreenNumber: req.ScreenNumber, TotalSeats: req.TotalSeats}
	if err := h.Screens.Update(ctx, s); err != nil {
		return failFromErr(c, err, "screen not found")
	}
	return ok(c, http.StatusOK, echo.Map{"screen": s})
}

func (h *ScreenHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid screen id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Screens.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "screen not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "screen deleted"})
}
