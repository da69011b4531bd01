package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	appmiddleware "github.com/sudostake/onboard/internal/middleware"
)

func TestConnectRateLimiter(t *testing.T) {
	e := echo.New()
	e.POST("/connect", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, appmiddleware.ConnectRateLimiter())

	var lastCode int
	limited := false
	for i := 0; i < 30; i++ {
		req := httptest.NewRequest(http.MethodPost, "/connect", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		lastCode = rec.Code
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}

	assert.True(t, limited, "expected a burst of requests to be limited, last status %d", lastCode)
}

func TestConnectRateLimiterAllowsFirstRequest(t *testing.T) {
	e := echo.New()
	e.POST("/connect", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, appmiddleware.ConnectRateLimiter())

	req := httptest.NewRequest(http.MethodPost, "/connect", nil)
	req.RemoteAddr = "198.51.100.9:4321"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
