package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/sudostake/onboard/internal/handlers"
)

func setupHomeTest(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.GET("/", handlers.NewHomeHandler().HomeGet)
	return e
}

func TestHomeGet(t *testing.T) {
	t.Run("lists mainnet chains by default", func(t *testing.T) {
		e := setupHomeTest(t)

		rec := getPath(e, "/")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "archway-1")
		assert.Contains(t, body, "neutron-1")
		assert.Contains(t, body, "Connect Keplr")
		assert.Contains(t, body, "Connect Ledger")
	})

	t.Run("lists testnet chains when selected", func(t *testing.T) {
		e := setupHomeTest(t)

		rec := getPath(e, "/?network=testnet")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "constantine-3")
		assert.Contains(t, body, "pion-1")
		assert.NotContains(t, body, "archway-1")
	})

	t.Run("unknown network falls back to mainnet", func(t *testing.T) {
		e := setupHomeTest(t)

		rec := getPath(e, "/?network=devnet")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "archway-1")
	})
}
