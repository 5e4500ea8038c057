package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// TheatreHandler: CRUD for theatres. Listing accepts ?cityId= to scope
// to one city.
type TheatreHandler struct {
	Theatres *repository.TheatreRepo
}

func NewTheatreHandler(theatres *repository.TheatreRepo) *TheatreHandler {
	return &TheatreHandler{Theatres: theatres}
}

type theatreReq struct {
	CityID   uint64 `json:"cityId"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (h *TheatreHandler) Create(c echo.Context) error {
	var req theatreReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.CityID == 0 {
		return fail(c, http.StatusBadRequest, "cityId and name are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	t := &model.Theatre{CityID: req.CityID, Name: req.Name, Location: strings.TrimSpace(req.Location)}
	if err := h.Theatres.Create(ctx, t); err != nil {
		return failFromErr(c, err, "theatre not found")
	}
	return ok(c, http.StatusCreated, echo.Map{"theatre": t})
}

func (h *TheatreHandler) List(c echo.Context) error {
	var cityID uint64
	if raw := c.QueryParam("cityId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid cityId filter")
		}
		cityID = id
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	theatres, err := h.Theatres.List(ctx, cityID)
	if err != nil {
		return failFromErr(c, err, "theatres not found")
	}
	return ok(c, http.StatusOK, echo.Map{"theatres": theatres})
}

func (h *TheatreHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid theatre id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	t, err := h.Theatres.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "theatre not found")
	}
	return ok(c, http.StatusOK, echo.Map{"theatre": t})
}

func (h *TheatreHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid theatre id")
	}
	var req theatreReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.CityID == 0 {
		return fail(c, http.StatusBadRequest, "cityId and name are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	t := &model.Theatre{ID: id, CityID: req.CityID, Name: req.Name, Location: strings.TrimSpace(req.Location)}
	if err := h.Theatres.Update(ctx, t); err != nil {
		return failFromErr(c, err, "theatre not found")
	}
	return ok(c, http.StatusOK, echo.Map{"theatre": t})
}

func (h *TheatreHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid theatre id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Theatres.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "theatre not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "theatre deleted"})
}
