package wallet

import (
	"context"
	"fmt"

	"github.com/sudostake/onboard/internal/chains"
)

// HDPath is a BIP-44 derivation path.
type HDPath struct {
	CoinType uint32
	Account  uint32
	Index    uint32
}

// DeviceAddress is the response of a hardware wallet's get-address call.
type DeviceAddress struct {
	Address   string
	PublicKey []byte
}

// Transport is the hardware-wallet capability: discover and open a
// device, derive an address for a chain, and release the device again.
type Transport interface {
	Open(ctx context.Context) error
	GetAddress(ctx context.Context, bech32Prefix string, path HDPath) (DeviceAddress, error)
	Close() error
}

// LedgerConnector connects through a hardware-wallet transport using
// the chain's derivation parameters at account 0, index 0.
type LedgerConnector struct {
	transport Transport
}

// NewLedgerConnector creates a connector over the given transport.
func NewLedgerConnector(transport Transport) *LedgerConnector {
	return &LedgerConnector{transport: transport}
}

// Connect opens the transport, derives the first account address for
// the deployment, and closes the transport again. The transport is
// closed on every path once Open has succeeded.
func (c *LedgerConnector) Connect(ctx context.Context, dep chains.Deployment) (Account, error) {
	if c.transport == nil {
		return Account{}, ErrNoDevice
	}
	if err := c.transport.Open(ctx); err != nil {
		return Account{}, fmt.Errorf("open ledger transport: %w", err)
	}
	defer c.transport.Close()

	addr, err := c.transport.GetAddress(ctx, dep.Bech32Prefix, HDPath{CoinType: dep.CoinType})
	if err != nil {
		return Account{}, fmt.Errorf("derive address for %s: %w", dep.ChainID, err)
	}
	if addr.Address == "" {
		return Account{}, fmt.Errorf("device returned an empty address for %s", dep.ChainID)
	}
	// Hardware wallets have no account label; Name stays empty and the
	// session omits walletName.
	return Account{Address: addr.Address}, nil
}
