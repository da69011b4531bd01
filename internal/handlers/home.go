package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sudostake/onboard/internal/chains"
	"github.com/sudostake/onboard/internal/session"
	"github.com/sudostake/onboard/internal/view"
	"github.com/sudostake/onboard/web/src/templates/layouts"
	"github.com/sudostake/onboard/web/src/templates/pages"
)

// HomeHandler serves the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet renders the landing page (GET /). The network toggle reloads
// the page with ?network=..., which htmx uses to swap the connect card.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	network := session.NetworkMainnet
	if session.Network(c.QueryParam("network")) == session.NetworkTestnet {
		network = session.NetworkTestnet
	}

	flashes := view.GetFlashData(c)
	data := pages.HomeData{
		Network: network,
		Chains:  chains.All(network),
	}

	return renderPage(c, layouts.Base("Connect", flashes, pages.Home(data)))
}
