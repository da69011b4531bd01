package session

// WalletType identifies which kind of wallet produced a session.
type WalletType string

const (
	WalletKeplr  WalletType = "keplr"
	WalletLedger WalletType = "ledger"
)

// Network selects between a chain's production and test deployments.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// DashboardSession is the record written to the session slot after a
// successful wallet connection and read back by the dashboard.
//
// The JSON field names and enum values are wire-exact: a deployed
// frontend may already have written this shape, so renaming a field is
// a breaking change that requires a migration plan.
type DashboardSession struct {
	WalletType   WalletType `json:"walletType"`
	Address      string     `json:"address"`
	WalletName   string     `json:"walletName,omitempty"`
	ChainKey     string     `json:"chainKey"`
	ChainDisplay string     `json:"chainDisplay"`
	Network      Network    `json:"network"`
	ChainID      string     `json:"chainId"`
	SignedInAt   string     `json:"signedInAt"`
}
