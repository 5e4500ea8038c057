package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOkMergesPayloadIntoEnvelope(t *testing.T) {
	c, rec := newTestContext()
	if err := ok(c, http.StatusCreated, echo.Map{"city": "x"}); err != nil {
		t.Fatalf("ok() error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["city"] != "x" {
		t.Errorf("city = %v, want x", body["city"])
	}
}

func TestFailFromErrMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"seat conflict", repository.ErrSeatUnavailable, http.StatusConflict},
		{"forbidden", repository.ErrForbidden, http.StatusForbidden},
		{"duplicate email", repository.ErrEmailExists, http.StatusBadRequest},
		{"store timeout", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			if err := failFromErr(c, tt.err, "missing"); err != nil {
				t.Fatalf("failFromErr() error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if int(body["statusCode"].(float64)) != tt.wantStatus {
				t.Errorf("statusCode = %v, want %d", body["statusCode"], tt.wantStatus)
			}
		})
	}
}
