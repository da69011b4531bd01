package wallet

import (
	"context"
	"fmt"

	"github.com/sudostake/onboard/internal/chains"
	"github.com/sudostake/onboard/internal/session"
)

// Account is the result of a successful wallet connection.
type Account struct {
	// Address is the bech32 account address on the selected chain.
	Address string
	// Name is the wallet's own label for the account, when the wallet
	// exposes one. Hardware wallets leave it empty.
	Name string
}

// Connector connects a wallet to a chain deployment and resolves the
// account to sign in with. Implementations wrap an external capability
// (a browser extension bridge, a hardware transport) and must honor
// context cancellation, since both involve user interaction.
type Connector interface {
	Connect(ctx context.Context, dep chains.Deployment) (Account, error)
}

// Registry maps a wallet type to its connector.
type Registry struct {
	connectors map[session.WalletType]Connector
}

// NewRegistry creates a registry from the given connectors.
func NewRegistry(connectors map[session.WalletType]Connector) *Registry {
	return &Registry{connectors: connectors}
}

// Lookup returns the connector for the given wallet type.
func (r *Registry) Lookup(wt session.WalletType) (Connector, error) {
	c, ok := r.connectors[wt]
	if !ok {
		return nil, fmt.Errorf("no connector registered for wallet type %q", wt)
	}
	return c, nil
}
