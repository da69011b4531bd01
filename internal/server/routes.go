package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/sudostake/onboard/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := appmiddleware.ConnectRateLimiter()

	s.E.GET("/", s.homeHandler.HomeGet)

	s.E.POST("/connect", s.connectHandler.ConnectPost, rateLimiter)
	s.E.POST("/signout", s.connectHandler.SignOutPost)

	s.E.GET("/dashboard", s.dashboardHandler.DashboardGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
