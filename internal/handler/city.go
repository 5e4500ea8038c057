package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// CityHandler: CRUD for cities. Reads are public, writes are ADMIN only
// (enforced in the router).
type CityHandler struct {
	Cities *repository.CityRepo
}

func NewCityHandler(cities *repository.CityRepo) *CityHandler {
	return &CityHandler{Cities: cities}
}

type cityReq struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

func (h *CityHandler) Create(c echo.Context) error {
	var req cityReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	city := &model.City{Name: req.Name, State: strings.TrimSpace(req.State)}
	if err := h.Cities.Create(ctx, city); err != nil {
		return failFromErr(c, err, "city not found")
	}
	return ok(c, http.StatusCreated, echo.Map{"city": city})
}

func (h *CityHandler) List(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	cities, err := h.Cities.List(ctx)
	if err != nil {
		return failFromErr(c, err, "cities not found")
	}
	return ok(c, http.StatusOK, echo.Map{"cities": cities})
}

func (h *CityHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid city id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	city, err := h.Cities.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "city not found")
	}
	return ok(c, http.StatusOK, echo.Map{"city": city})
}

func (h *CityHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid city id")
	}
	var req cityReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	city := &model.City{ID: id, Name: req.Name, State: strings.TrimSpace(req.State)}
	if err := h.Cities.Update(ctx, city); err != nil {
		return failFromErr(c, err, "city not found")
	}
	return ok(c, http.StatusOK, echo.Map{"city": city})
}

func (h *CityHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid city id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Cities.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "city not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "city deleted"})
}
