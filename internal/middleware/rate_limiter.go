package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ConnectRateLimiter throttles wallet-connect attempts per client IP.
// Every attempt pops a wallet prompt or a hardware-device dialog, so a
// tight limit also protects the user from a page stuck in a retry loop.
func ConnectRateLimiter() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// In-memory store, suitable for a single-instance deployment.
		Store: middleware.NewRateLimiterMemoryStore(10),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many connection attempts. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
