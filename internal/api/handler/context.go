package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// ctxProfile extracts the resolved user profile injected by the Profile
// middleware. Its absence means the middleware chain did not run; treat
// that as unauthenticated, never as a permissive default.
func ctxProfile(c echo.Context) (*domain.UserProfile, error) {
	profile, _ := c.Get("profile").(*domain.UserProfile)
	if profile == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return profile, nil
}
