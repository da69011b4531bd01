package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sudostake/onboard/internal/session"
	"github.com/sudostake/onboard/internal/view"
	"github.com/sudostake/onboard/web/src/templates/layouts"
	"github.com/sudostake/onboard/web/src/templates/pages"
)

// DashboardHandler serves the signed-in dashboard.
type DashboardHandler struct {
	codec *session.Codec
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(codec *session.Codec) *DashboardHandler {
	return &DashboardHandler{codec: codec}
}

// DashboardGet renders the dashboard (GET /dashboard). Any "no valid
// session" state — first visit, cleared slot, corrupted or stale data —
// uniformly redirects to the connect flow; no diagnostic detail is
// surfaced.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	sess, ok := h.codec.Load()
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	flashes := view.GetFlashData(c)
	return renderPage(c, layouts.Base("Dashboard", flashes, pages.Dashboard(sess)))
}
