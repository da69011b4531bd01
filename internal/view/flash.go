package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData carries the one-shot messages a page renders after a
// redirect.
type FlashData struct {
	Success []string
	Error   []string
}

// setFlash stores a flash message in the cookie session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess queues a success message for the next page render.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message for the next page render.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears the queued flash messages.
func GetFlashData(c echo.Context) FlashData {
	sess, _ := session.Get(flashSessionName, c)

	data := FlashData{
		Success: flashStrings(sess.Flashes(flashKeySuccess)),
		Error:   flashStrings(sess.Flashes(flashKeyError)),
	}

	// Flashes() consumes the messages; saving persists the removal.
	if len(data.Success) > 0 || len(data.Error) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func flashStrings(flashes []interface{}) []string {
	var out []string
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
