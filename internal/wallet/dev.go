package wallet

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// Dev capabilities stand in for the real browser-extension bridge and
// hardware transport during local development, the same way the mail
// layer logs instead of sending. They derive a stable, obviously fake
// address per chain so the full connect flow can be exercised without
// a wallet.

// DevExtension is an always-available Extension that approves every
// chain and returns a deterministic account.
type DevExtension struct {
	// AccountName is the label reported by GetKey.
	AccountName string
}

// Enable approves access to any chain.
func (d *DevExtension) Enable(ctx context.Context, chainID string) error {
	slog.Info("dev extension: enable", "chain_id", chainID)
	return nil
}

// GetKey returns a deterministic dev account for the chain.
func (d *DevExtension) GetKey(ctx context.Context, chainID string) (Key, error) {
	name := d.AccountName
	if name == "" {
		name = "Dev Account"
	}
	return Key{Name: name, Bech32Address: devAddress("dev", chainID)}, nil
}

// DevTransport is an always-present hardware transport returning a
// deterministic address per prefix and path.
type DevTransport struct{}

// Open always succeeds.
func (d *DevTransport) Open(ctx context.Context) error { return nil }

// GetAddress derives a deterministic dev address.
func (d *DevTransport) GetAddress(ctx context.Context, bech32Prefix string, path HDPath) (DeviceAddress, error) {
	seed := fmt.Sprintf("%s/%d/%d/%d", bech32Prefix, path.CoinType, path.Account, path.Index)
	return DeviceAddress{
		Address:   devAddress(bech32Prefix, seed),
		PublicKey: []byte{0x02},
	}, nil
}

// Close always succeeds.
func (d *DevTransport) Close() error { return nil }

// devAddress builds a stable address-shaped string from a seed. It is
// not valid bech32 and must never reach a real chain.
func devAddress(prefix, seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return prefix + "1" + hex.EncodeToString(sum[:])[:38]
}
