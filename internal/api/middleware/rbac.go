package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linguahub/translation-dashboard/internal/core/access"
	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// RequireRole enforces role-based access control on a route. Admins pass
// every gate; a missing profile is refused outright.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := append([]domain.Role{domain.RoleAdmin}, roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, _ := c.Get("profile").(*domain.UserProfile)
			if !access.HasRole(profile, allowed...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
