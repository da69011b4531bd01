package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// renderPage writes a gomponents component as the HTML response.
func renderPage(c echo.Context, component cmp.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return component.Render(c.Response().Writer)
}
