package wallet

import (
	"context"
	"fmt"

	"github.com/sudostake/onboard/internal/chains"
)

// Key is the account material a wallet extension exposes for a chain.
type Key struct {
	Name          string
	Bech32Address string
}

// Extension is the browser-extension capability a Keplr-style wallet
// exposes: approve access to a chain, then read the active key.
type Extension interface {
	Enable(ctx context.Context, chainID string) error
	GetKey(ctx context.Context, chainID string) (Key, error)
}

// KeplrConnector connects through a wallet extension.
type KeplrConnector struct {
	ext Extension
}

// NewKeplrConnector creates a connector over the given extension
// capability. A nil extension means the wallet is not installed.
func NewKeplrConnector(ext Extension) *KeplrConnector {
	return &KeplrConnector{ext: ext}
}

// Connect asks the extension to enable the chain and resolves the
// active account.
func (c *KeplrConnector) Connect(ctx context.Context, dep chains.Deployment) (Account, error) {
	if c.ext == nil {
		return Account{}, ErrNotInstalled
	}
	if err := c.ext.Enable(ctx, dep.ChainID); err != nil {
		return Account{}, fmt.Errorf("enable %s: %w", dep.ChainID, err)
	}
	key, err := c.ext.GetKey(ctx, dep.ChainID)
	if err != nil {
		return Account{}, fmt.Errorf("get key for %s: %w", dep.ChainID, err)
	}
	if key.Bech32Address == "" {
		return Account{}, fmt.Errorf("extension returned an empty address for %s", dep.ChainID)
	}
	return Account{Address: key.Bech32Address, Name: key.Name}, nil
}
