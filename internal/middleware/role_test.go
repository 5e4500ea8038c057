package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

// newAuthedContext builds a context with identity values pre-populated the
// way JWTAuth would leave them.
func newAuthedContext(userID uint64, role, paramName, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set(CtxUserID, userID)
	}
	if role != "" {
		c.Set(CtxRole, role)
	}
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	return c, rec
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
		wantPass   bool
	}{
		{"admin allowed", "ADMIN", []string{"ADMIN"}, http.StatusOK, true},
		{"user forbidden on admin route", "USER", []string{"ADMIN"}, http.StatusForbidden, false},
		{"user allowed on shared route", "USER", []string{"USER", "ADMIN"}, http.StatusOK, true},
		{"missing identity", "", []string{"ADMIN"}, http.StatusUnauthorized, false},
		{"unknown role", "SUPERUSER", []string{"USER", "ADMIN"}, http.StatusForbidden, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthedContext(1, tt.role, "", "")
			passed := false
			h := RequireRole(tt.allowed...)(func(c echo.Context) error {
				passed = true
				return c.NoContent(http.StatusOK)
			})
			if err := h(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if passed != tt.wantPass {
				t.Errorf("passed = %v, want %v", passed, tt.wantPass)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name       string
		userID     uint64
		role       string
		target     string
		wantStatus int
		wantPass   bool
	}{
		{"self access", 42, "USER", "42", http.StatusOK, true},
		{"other user forbidden", 42, "USER", "7", http.StatusForbidden, false},
		{"admin overrides", 1, "ADMIN", "7", http.StatusOK, true},
		{"no identity", 0, "", "7", http.StatusUnauthorized, false},
		{"garbage param", 42, "USER", "abc", http.StatusForbidden, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthedContext(tt.userID, tt.role, "id", tt.target)
			passed := false
			h := RequireSelfOrAdmin("id")(func(c echo.Context) error {
				passed = true
				return c.NoContent(http.StatusOK)
			})
			if err := h(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if passed != tt.wantPass {
				t.Errorf("passed = %v, want %v", passed, tt.wantPass)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
