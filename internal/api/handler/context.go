package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// currentIdentity extracts the identity id injected by the RequireIdentity
// middleware and fast-fails before any service call: an empty id means the
// middleware did not run, which is a wiring bug surfaced as 401 rather
// than an anonymous write.
func currentIdentity(c echo.Context) (string, error) {
	id, _ := c.Get("identity_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
