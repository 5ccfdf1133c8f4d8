package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hirewire/portal/internal/api/metrics"
	"github.com/hirewire/portal/internal/core/access"
	"github.com/hirewire/portal/internal/core/ports"
)

// Context keys under which the caller's claims are stored for handlers.
const (
	CtxIdentityID = "identity_id"
	CtxRole       = "role"
)

// AccessControl enforces the routing policy on every page request: it
// reads the caller's claim set from the identity provider, evaluates the
// decision table, and either redirects or forwards the request unchanged.
// It is stateless across requests and sufficient on its own — page
// handlers never re-check.
//
// A missing or invalid session means anonymous; a provider fault (e.g.
// the session store is down) propagates as an error.
func AccessControl(idp ports.IdentityProvider, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := idp.Authenticate(c.Request())
			if err != nil && !errors.Is(err, ports.ErrNoIdentity) {
				return err
			}

			path := c.Request().URL.Path
			d := access.Decide(claims, path)
			metrics.AccessDecisionsTotal.WithLabelValues(string(d.Outcome)).Inc()

			if !d.Allow {
				log.Debug().
					Str("path", path).
					Str("outcome", string(d.Outcome)).
					Str("location", d.Location).
					Msg("access redirect")
				return c.Redirect(http.StatusSeeOther, d.Location)
			}

			c.Set(CtxIdentityID, claims.IdentityID)
			c.Set(CtxRole, string(claims.Role))
			return next(c)
		}
	}
}
