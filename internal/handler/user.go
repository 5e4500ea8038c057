package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// UserHandler exposes admin user management plus the self-service update
// endpoint. Ownership checks for the update route run in middleware; the
// handlers here only shape requests and responses.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(users *repository.UserRepo) *UserHandler {
	return &UserHandler{Users: users}
}

type updateUserReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// List returns every account, password hashes excluded. ADMIN only.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return failFromErr(c, err, "users not found")
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, viewOf(u))
	}
	return ok(c, http.StatusOK, echo.Map{"users": views})
}

// Get returns a single account. Route middleware restricts this to the
// account owner or an admin.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return failFromErr(c, err, "user not found")
	}
	return ok(c, http.StatusOK, echo.Map{"user": viewOf(u)})
}

// Update changes a user's name and/or email. Blank fields are left
// untouched.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}

	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" && req.Email == "" {
		return fail(c, http.StatusBadRequest, "nothing to update")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	u, err := h.Users.Update(ctx, id, req.Name, req.Email)
	if err != nil {
		return failFromErr(c, err, "user not found")
	}
	return ok(c, http.StatusOK, echo.Map{"user": viewOf(u)})
}

// Delete removes an account. ADMIN only.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		return failFromErr(c, err, "user not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "user deleted"})
}
