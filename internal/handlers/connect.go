package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sudostake/onboard/internal/chains"
	"github.com/sudostake/onboard/internal/pubsub"
	"github.com/sudostake/onboard/internal/session"
	"github.com/sudostake/onboard/internal/topics"
	"github.com/sudostake/onboard/internal/view"
	"github.com/sudostake/onboard/internal/wallet"
)

// ConnectHandler runs the wallet-connect flow: resolve the selected
// chain, connect the chosen wallet, persist the dashboard session, and
// announce the sign-in on the bus.
type ConnectHandler struct {
	wallets   *wallet.Registry
	codec     *session.Codec
	publisher pubsub.Publisher
}

// NewConnectHandler creates a new ConnectHandler.
func NewConnectHandler(wallets *wallet.Registry, codec *session.Codec, publisher pubsub.Publisher) *ConnectHandler {
	return &ConnectHandler{
		wallets:   wallets,
		codec:     codec,
		publisher: publisher,
	}
}

// ConnectPost handles the wallet-connect form submission (POST /connect).
func (h *ConnectHandler) ConnectPost(c echo.Context) error {
	var req ConnectRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, "Invalid connect request.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, "Pick a wallet, chain, and network to connect.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	network := session.Network(req.Network)
	dep, err := chains.Lookup(req.Chain, network)
	if err != nil {
		view.SetFlashError(c, "That chain is not available on the selected network.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	walletType := session.WalletType(req.Wallet)
	connector, err := h.wallets.Lookup(walletType)
	if err != nil {
		view.SetFlashError(c, "That wallet is not supported.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	account, err := connector.Connect(c.Request().Context(), dep)
	if err != nil {
		slog.Warn("Wallet connection failed", "wallet", walletType, "chain_id", dep.ChainID, "error", err)
		view.SetFlashError(c, connectErrorMessage(err))
		return c.Redirect(http.StatusSeeOther, "/")
	}

	sess := session.DashboardSession{
		WalletType:   walletType,
		Address:      account.Address,
		WalletName:   account.Name,
		ChainKey:     dep.Key,
		ChainDisplay: dep.Display,
		Network:      dep.Network,
		ChainID:      dep.ChainID,
		SignedInAt:   time.Now().UTC().Format(time.RFC3339),
	}
	h.codec.Save(sess)

	h.publish(c, topics.SessionSignedIn, sess)

	view.SetFlashSuccess(c, "Wallet connected.")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SignOutPost clears the session slot (POST /signout).
func (h *ConnectHandler) SignOutPost(c echo.Context) error {
	sess, ok := h.codec.Load()
	h.codec.Clear()
	if ok {
		h.publish(c, topics.SessionSignedOut, sess)
	}

	view.SetFlashSuccess(c, "Signed out.")
	return c.Redirect(http.StatusSeeOther, "/")
}

// publish announces a session lifecycle change. Bus failures must not
// break the user flow, so they are logged and swallowed.
func (h *ConnectHandler) publish(c echo.Context, topic string, sess session.DashboardSession) {
	if h.publisher == nil {
		return
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return
	}
	ev := pubsub.Event{
		Topic:   topic,
		Address: sess.Address,
		Payload: payload,
		Metadata: map[string]string{
			"chain_id": sess.ChainID,
			"network":  string(sess.Network),
		},
	}
	if err := h.publisher.Publish(c.Request().Context(), ev); err != nil {
		slog.Error("Failed to publish session event", "topic", topic, "error", err)
	}
}

// connectErrorMessage maps connector failures to the message shown on
// the landing page.
func connectErrorMessage(err error) string {
	switch {
	case errors.Is(err, wallet.ErrNotInstalled):
		return "Keplr is not installed. Install the extension and try again."
	case errors.Is(err, wallet.ErrRejected):
		return "Connection request was rejected in the wallet."
	case errors.Is(err, wallet.ErrNoDevice):
		return "No Ledger device found. Plug it in and unlock it."
	case errors.Is(err, wallet.ErrAppClosed):
		return "Open the Cosmos app on your Ledger and try again."
	default:
		return "Could not connect your wallet."
	}
}
