package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// pageResponse is the placeholder body served where the UI would render a
// page. The access-control middleware decides whether a caller reaches a
// page at all; the bodies themselves carry no logic.
type pageResponse struct {
	Page string `json:"page"`
	Path string `json:"path"`
}

// Page returns a handler serving a named placeholder page.
func Page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, pageResponse{Page: name, Path: c.Request().URL.Path})
	}
}
