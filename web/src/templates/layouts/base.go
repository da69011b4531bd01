package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/sudostake/onboard/internal/view"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - SudoStake"
	}
	return "SudoStake"
}

// Base wraps page content in the shared HTML shell: head, flash
// banners, and footer.
func Base(title string, flashes view.FlashData, content cmp.Node) cmp.Node {
	return g.Doctype(g.HTML(
		g.Lang("en"),
		g.Head(
			g.Meta(g.Charset("utf-8")),
			g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
			g.TitleEl(cmp.Text(CalculateTitle(title))),
			g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
			g.Script(g.Src("https://cdn.tailwindcss.com")),
			g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
		),
		g.Body(
			g.Class("min-h-screen bg-gray-50 text-gray-900"),
			flashBanners(flashes),
			g.Main(content),
			g.Footer(
				g.Class("mt-16 border-t py-6 text-center text-sm text-gray-500"),
				cmp.Text("SudoStake: non-custodial staking vaults for the Cosmos ecosystem."),
			),
		),
	))
}

func flashBanners(flashes view.FlashData) cmp.Node {
	if len(flashes.Success) == 0 && len(flashes.Error) == 0 {
		return nil
	}
	return g.Div(
		g.Class("container mx-auto px-4 pt-4 space-y-2"),
		cmp.Group(banners(flashes.Success, "bg-green-100 text-green-800")),
		cmp.Group(banners(flashes.Error, "bg-red-100 text-red-800")),
	)
}

func banners(messages []string, classes string) []cmp.Node {
	var nodes []cmp.Node
	for _, m := range messages {
		nodes = append(nodes, g.Div(
			g.Class("rounded-lg px-4 py-3 "+classes),
			cmp.Text(m),
		))
	}
	return nodes
}
