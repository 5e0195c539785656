package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// Profile resolves the authenticated external id to a stored user profile
// and injects it into context. A token that verifies but has no matching
// profile is still unauthenticated: the identity exists at the provider
// but not in this system.
func Profile(identity ports.IdentityService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			externalID, _ := c.Get("external_id").(string)
			if externalID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			profile, err := identity.Resolve(c.Request().Context(), externalID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown identity")
				}
				return err
			}

			c.Set("profile", profile)
			return next(c)
		}
	}
}
