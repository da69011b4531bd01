package chains

import (
	"fmt"

	"github.com/sudostake/onboard/internal/session"
)

// Deployment describes one chain on one network: everything the connect
// flow needs to talk to a wallet and fill in a dashboard session.
type Deployment struct {
	// Key is the stable identifier stored in the session (e.g. "archway").
	Key string
	// Display is the human-readable chain name shown in the UI.
	Display string
	// Network is the deployment this entry belongs to.
	Network session.Network
	// ChainID is the Cosmos chain ID passed to wallet APIs.
	ChainID string
	// Bech32Prefix is the address prefix accounts on this chain use.
	Bech32Prefix string
	// CoinType is the SLIP-44 coin type for hardware-wallet derivation.
	CoinType uint32
}

// deployments is the static set of supported chain/network pairs. Order
// matters: the landing page lists chains in this order.
var deployments = []Deployment{
	{Key: "archway", Display: "Archway", Network: session.NetworkMainnet, ChainID: "archway-1", Bech32Prefix: "archway", CoinType: 118},
	{Key: "archway", Display: "Archway", Network: session.NetworkTestnet, ChainID: "constantine-3", Bech32Prefix: "archway", CoinType: 118},
	{Key: "neutron", Display: "Neutron", Network: session.NetworkMainnet, ChainID: "neutron-1", Bech32Prefix: "neutron", CoinType: 118},
	{Key: "neutron", Display: "Neutron", Network: session.NetworkTestnet, ChainID: "pion-1", Bech32Prefix: "neutron", CoinType: 118},
}

// Lookup resolves a chain key and network to its deployment.
func Lookup(key string, network session.Network) (Deployment, error) {
	for _, d := range deployments {
		if d.Key == key && d.Network == network {
			return d, nil
		}
	}
	return Deployment{}, fmt.Errorf("unsupported chain %q on %s", key, network)
}

// All returns every supported deployment on the given network.
func All(network session.Network) []Deployment {
	var out []Deployment
	for _, d := range deployments {
		if d.Network == network {
			out = append(out, d)
		}
	}
	return out
}

// Keys returns the distinct chain keys in listing order.
func Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, d := range deployments {
		if !seen[d.Key] {
			seen[d.Key] = true
			keys = append(keys, d.Key)
		}
	}
	return keys
}
