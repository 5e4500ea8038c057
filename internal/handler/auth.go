package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and token
// refresh. Access and refresh tokens are both stateless JWTs signed with
// independent secrets, so a leaked refresh secret cannot mint access
// tokens and vice versa.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}
type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// userView is a user without the password hash.
type userView struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func viewOf(u model.User) userView {
	return userView{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

// Register creates a USER account and returns it with a fresh token pair.
// Role is never taken from the request body; admins are promoted out of
// band.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fail(c, http.StatusBadRequest, "email, password and name are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Email, req.Password, req.Name, model.RoleUser, h.Cfg.BcryptCost)
	if err != nil {
		return failFromErr(c, err, "user not found")
	}
	u := model.User{ID: uid, Email: req.Email, Name: req.Name, Role: model.RoleUser}
	return h.respondWithTokens(c, http.StatusCreated, u)
}

// Login verifies credentials and returns the user with a new token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same message as a wrong password so the endpoint does not
			// reveal which emails are registered.
			return fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		return failFromErr(c, err, "user not found")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}
	return h.respondWithTokens(c, http.StatusOK, u)
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated; it stays valid until expiry.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return fail(c, http.StatusBadRequest, "refreshToken is required")
	}

	userID, err := utils.VerifyRefreshToken(h.Cfg.RefreshSecret, strings.TrimSpace(req.RefreshToken))
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return fail(c, http.StatusUnauthorized, "refresh token expired")
		}
		return fail(c, http.StatusUnauthorized, "invalid refresh token")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	// The user may have been deleted since the token was issued.
	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "invalid refresh token")
		}
		return failFromErr(c, err, "user not found")
	}

	access, err := utils.NewAccessToken(h.Cfg.AccessSecret, u.ID, u.Email, u.Role, h.Cfg.AccessTTLHours)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue access token")
	}
	return ok(c, http.StatusOK, echo.Map{
		"accessToken": access.Token,
		"expiresAt":   access.Exp,
	})
}

// Profile returns the authenticated caller's account.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, okID := c.Get(middleware.CtxUserID).(uint64)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return failFromErr(c, err, "user not found")
	}
	return ok(c, http.StatusOK, echo.Map{"user": viewOf(u)})
}

// ChangePassword verifies the current password before setting the new
// one. Only the account owner or an admin reaches this handler; the
// current-password check still applies to admins acting on their own
// account but is skipped when an admin resets someone else's.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	targetID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}
	callerID, _ := c.Get(middleware.CtxUserID).(uint64)
	role, _ := c.Get(middleware.CtxRole).(string)

	var req changePasswordReq
	if err := c.Bind(&req); err != nil || req.NewPassword == "" {
		return fail(c, http.StatusBadRequest, "newPassword is required")
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if callerID == targetID || role != model.RoleAdmin {
		u, err := h.Users.GetByID(ctx, targetID)
		if err != nil {
			return failFromErr(c, err, "user not found")
		}
		if !utils.VerifyPassword(u.PasswordHash, req.CurrentPassword) {
			return fail(c, http.StatusUnauthorized, "current password is incorrect")
		}
	}

	if err := h.Users.UpdatePassword(ctx, targetID, req.NewPassword, h.Cfg.BcryptCost); err != nil {
		return failFromErr(c, err, "user not found")
	}
	return ok(c, http.StatusOK, echo.Map{"message": "password updated"})
}

func (h *AuthHandler) respondWithTokens(c echo.Context, status int, u model.User) error {
	access, err := utils.NewAccessToken(h.Cfg.AccessSecret, u.ID, u.Email, u.Role, h.Cfg.AccessTTLHours)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue access token")
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshSecret, u.ID, h.Cfg.RefreshTTLDays)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "could not issue refresh token")
	}
	return ok(c, status, echo.Map{
		"user":         viewOf(u),
		"accessToken":  access.Token,
		"refreshToken": refresh.Token,
		"expiresAt":    access.Exp,
	})
}
