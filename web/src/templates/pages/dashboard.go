package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/sudostake/onboard/internal/session"
)

// Dashboard renders the signed-in view for the given session.
func Dashboard(sess session.DashboardSession) cmp.Node {
	walletLabel := "Keplr"
	if sess.WalletType == session.WalletLedger {
		walletLabel = "Ledger"
	}

	return g.Div(
		g.Class("container mx-auto px-4 py-12"),
		g.Div(
			g.Class("max-w-3xl mx-auto bg-white shadow-xl rounded-xl p-8"),
			g.Div(
				g.Class("flex items-center justify-between mb-8"),
				g.H1(
					g.Class("text-3xl font-bold text-indigo-700"),
					cmp.Textf("%s Dashboard", sess.ChainDisplay),
				),
				g.Form(
					g.Method("post"),
					g.Action("/signout"),
					g.Button(
						g.Type("submit"),
						g.Class("rounded-lg bg-gray-100 px-4 py-2 text-sm font-semibold text-gray-700 hover:bg-gray-200"),
						cmp.Text("Sign out"),
					),
				),
			),
			g.Dl(
				g.Class("grid grid-cols-1 sm:grid-cols-2 gap-6"),
				detail("Wallet", walletLabel),
				detail("Account", accountLabel(sess)),
				detail("Address", sess.Address),
				detail("Network", string(sess.Network)),
				detail("Chain ID", sess.ChainID),
				detail("Signed in", sess.SignedInAt),
			),
		),
	)
}

func accountLabel(sess session.DashboardSession) string {
	if sess.WalletName != "" {
		return sess.WalletName
	}
	return "Hardware account"
}

func detail(label, value string) cmp.Node {
	return g.Div(
		g.Dt(g.Class("text-sm font-medium text-gray-500"), cmp.Text(label)),
		g.Dd(g.Class("mt-1 font-mono text-sm break-all"), cmp.Text(value)),
	)
}
