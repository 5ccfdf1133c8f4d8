package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirewire/portal/internal/core/ports"
)

// RequireIdentity guards JSON API routes. Unlike the page-facing access
// control, failures answer with a 401 body rather than a redirect. The
// caller's role may still be unset; handlers that need one check it.
func RequireIdentity(idp ports.IdentityProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := idp.Authenticate(c.Request())
			if errors.Is(err, ports.ErrNoIdentity) {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if err != nil {
				return err
			}

			c.Set(CtxIdentityID, claims.IdentityID)
			c.Set(CtxRole, string(claims.Role))
			return next(c)
		}
	}
}
