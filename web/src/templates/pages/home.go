package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/sudostake/onboard/internal/chains"
	"github.com/sudostake/onboard/internal/session"
)

// HomeData is the view model for the landing page.
type HomeData struct {
	// Network is the currently selected network tab.
	Network session.Network
	// Chains are the deployments available on that network.
	Chains []chains.Deployment
}

// Home renders the landing page: product pitch, network toggle, chain
// picker, and the two wallet connect buttons.
func Home(data HomeData) cmp.Node {
	return g.Div(
		g.Class("container mx-auto px-4 py-16"),
		g.Div(
			g.Class("max-w-2xl mx-auto text-center"),
			g.H1(
				g.Class("text-5xl font-extrabold text-indigo-700 mb-4"),
				cmp.Text("Stake. Borrow. Stay in control."),
			),
			g.P(
				g.Class("text-lg text-gray-700 mb-10"),
				cmp.Text("SudoStake vaults let you delegate to validators and unlock liquidity against your stake, without handing over your keys."),
			),
		),
		ConnectForm(data),
	)
}

// ConnectForm renders the wallet-connect card. It is a separate
// component so the network toggle can swap just this fragment over
// htmx.
func ConnectForm(data HomeData) cmp.Node {
	return g.Div(
		g.ID("connect-form"),
		g.Class("max-w-md mx-auto bg-white shadow-xl rounded-xl p-8"),
		g.Div(
			g.Class("flex gap-2 mb-6"),
			networkTab(data.Network, session.NetworkMainnet, "Mainnet"),
			networkTab(data.Network, session.NetworkTestnet, "Testnet"),
		),
		g.Form(
			g.Method("post"),
			g.Action("/connect"),
			g.Input(g.Type("hidden"), g.Name("network"), g.Value(string(data.Network))),
			g.Label(
				g.Class("block text-sm font-medium text-gray-700 mb-1"),
				g.For("chain"),
				cmp.Text("Chain"),
			),
			g.Select(
				g.ID("chain"),
				g.Name("chain"),
				g.Class("w-full rounded-lg border-gray-300 mb-6"),
				cmp.Group(chainOptions(data.Chains)),
			),
			g.Div(
				g.Class("space-y-3"),
				walletButton(session.WalletKeplr, "Connect Keplr"),
				walletButton(session.WalletLedger, "Connect Ledger"),
			),
		),
	)
}

func networkTab(active, network session.Network, label string) cmp.Node {
	classes := "flex-1 rounded-lg py-2 text-sm font-semibold "
	if active == network {
		classes += "bg-indigo-600 text-white"
	} else {
		classes += "bg-gray-100 text-gray-700 hover:bg-gray-200"
	}
	return g.Button(
		g.Type("button"),
		g.Class(classes),
		hx.Get("/?network="+string(network)),
		hx.Select("#connect-form"),
		hx.Target("#connect-form"),
		hx.Swap("outerHTML"),
		cmp.Text(label),
	)
}

func chainOptions(deployments []chains.Deployment) []cmp.Node {
	var nodes []cmp.Node
	for _, d := range deployments {
		nodes = append(nodes, g.Option(
			g.Value(d.Key),
			cmp.Textf("%s (%s)", d.Display, d.ChainID),
		))
	}
	return nodes
}

func walletButton(wt session.WalletType, label string) cmp.Node {
	return g.Button(
		g.Type("submit"),
		g.Name("wallet"),
		g.Value(string(wt)),
		g.Class("w-full rounded-lg bg-indigo-600 py-3 font-semibold text-white hover:bg-indigo-700"),
		cmp.Text(label),
	)
}
