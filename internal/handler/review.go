package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// ReviewHandler: movie reviews. Anyone authenticated can write one;
// editing and deleting is restricted to the author or an admin.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
}

func NewReviewHandler(reviews *repository.ReviewRepo) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

type reviewReq struct {
	MovieID uint64 `json:"movieId"`
	Rating  uint8  `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Create(c echo.Context) error {
	userID, _ := caller(c)

	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.MovieID == 0 {
		return fail(c, http.StatusBadRequest, "movieId is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fail(c, http.StatusBadRequest, "rating must be between 1 and 5")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rv := &model.Review{
		UserID:  userID,
		MovieID: req.MovieID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}
	if err := h.Reviews.Create(ctx, rv); err != nil {
		return failFromErr(c, err, "movie not found")
	}
	return ok(c, http.StatusCreated, echo.Map{"review": rv})
}

// ListByMovie is public; it backs the movie detail page.
func (h *ReviewHandler) ListByMovie(c echo.Context) error {
	movieID, err := pathID(c, "movieId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid movie id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	reviews, err := h.Reviews.ListByMovie(ctx, movieID)
	if err != nil {
		return failFromErr(c, err, "reviews not found")
	}
	return ok(c, http.StatusOK, echo.Map{"reviews": reviews})
}

func (h *ReviewHandler) ListByUser(c echo.Context) error {
	targetID, err := pathID(c, "userId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	userID, isAdmin := caller(c)
	if !isAdmin && targetID != userID {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	reviews, err := h.Reviews.ListByUser(ctx, targetID)
	if err != nil {
		return failFromErr(c, err, "reviews not found")
	}
	return ok(c, http.StatusOK, echo.Map{"reviews": reviews})
}

func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid review id")
	}
	userID, isAdmin := caller(c)

	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fail(c, http.StatusBadRequest, "rating must be between 1 and 5")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rv, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "review not found")
	}
	if !isAdmin && rv.UserID != userID {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	rv.Rating = req.Rating
	rv.Comment = strings.TrimSpace(req.Comment)
	if err := h.Reviews.Update(ctx, &rv); err != nil {
		return failFromErr(c, err, "review not found")
	}
	return ok(c, http.StatusOK, echo.Map{"review": rv})
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid review id")
	}
	userID, isAdmin := caller(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rv, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "review not found")
	}
	if !isAdmin && rv.UserID != userID {
		return fail(c, http.StatusForbidden, "forbidden")
	}

	if err := h.Reviews.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "review not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "review deleted"})
}
