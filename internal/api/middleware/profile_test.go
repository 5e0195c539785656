package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

type stubIdentity struct {
	profile    *domain.UserProfile
	resolveErr error
}

func (s *stubIdentity) Resolve(_ context.Context, _ string) (*domain.UserProfile, error) {
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	return s.profile, nil
}

func (s *stubIdentity) ProcessEvent(_ context.Context, _ ports.WebhookEventInput) error {
	return nil
}

func (s *stubIdentity) ListAssignable(_ context.Context) ([]ports.AssignableUser, error) {
	return nil, nil
}

func TestProfileMiddleware_ResolvesProfile(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("external_id", "ext_abc")

	want := &domain.UserProfile{ID: "u1", ExternalID: "ext_abc", Role: domain.RoleClient}
	mw := Profile(&stubIdentity{profile: want})
	handler := mw(func(c echo.Context) error {
		got, _ := c.Get("profile").(*domain.UserProfile)
		if got == nil || got.ID != "u1" {
			t.Fatalf("profile not injected: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileMiddleware_UnknownIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("external_id", "ext_missing")

	mw := Profile(&stubIdentity{resolveErr: domain.ErrUserNotFound})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileMiddleware_MissingExternalID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Profile(&stubIdentity{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileMiddleware_StorageErrorPropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("external_id", "ext_abc")

	mw := Profile(&stubIdentity{resolveErr: errors.New("mongo unavailable")})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err == nil {
		t.Fatal("expected error to propagate to the central handler")
	}
}
