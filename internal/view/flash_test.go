package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/sudostake/onboard/internal/view"
)

func newFlashContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := sessions.NewCookieStore([]byte("test-secret"))
	mw := session.Middleware(store)
	handler := mw(func(c echo.Context) error { return nil })
	_ = handler(c)

	return c
}

func TestFlashRoundTrip(t *testing.T) {
	c := newFlashContext(t)

	view.SetFlashSuccess(c, "Connected!")
	view.SetFlashError(c, "Something went wrong.")

	data := view.GetFlashData(c)
	assert.Equal(t, []string{"Connected!"}, data.Success)
	assert.Equal(t, []string{"Something went wrong."}, data.Error)

	// Flashes are one-shot: a second read is empty.
	data = view.GetFlashData(c)
	assert.Empty(t, data.Success)
	assert.Empty(t, data.Error)
}

func TestFlashEmpty(t *testing.T) {
	c := newFlashContext(t)
	data := view.GetFlashData(c)
	assert.Empty(t, data.Success)
	assert.Empty(t, data.Error)
}
