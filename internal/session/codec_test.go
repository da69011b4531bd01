package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudostake/onboard/internal/session"
)

func validSession() session.DashboardSession {
	return session.DashboardSession{
		WalletType:   session.WalletKeplr,
		Address:      "cosmos1abcdefghijklmnopqrstuvwxyz0123456789",
		WalletName:   "My Wallet",
		ChainKey:     "archway",
		ChainDisplay: "Archway",
		Network:      session.NetworkMainnet,
		ChainID:      "archway-1",
		SignedInAt:   "2024-01-01T00:00:00.000Z",
	}
}

func TestCodecRoundTrip(t *testing.T) {
	store := session.NewMemoryStore()
	codec := session.NewCodec(store)

	want := validSession()
	codec.Save(want)

	got, ok := codec.Load()
	require.True(t, ok, "expected a valid session after Save")
	assert.Equal(t, want, got)
}

func TestCodecRoundTripWithoutWalletName(t *testing.T) {
	codec := session.NewCodec(session.NewMemoryStore())

	want := validSession()
	want.WalletName = ""
	codec.Save(want)

	got, ok := codec.Load()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCodecLoadAbsent(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		codec := session.NewCodec(session.NewMemoryStore())
		_, ok := codec.Load()
		assert.False(t, ok)
	})

	t.Run("nil store capability", func(t *testing.T) {
		codec := session.NewCodec(nil)
		_, ok := codec.Load()
		assert.False(t, ok)

		// Save and Clear must be silent no-ops as well.
		codec.Save(validSession())
		codec.Clear()
		_, ok = codec.Load()
		assert.False(t, ok)
	})
}

func TestCodecClear(t *testing.T) {
	store := session.NewMemoryStore()
	codec := session.NewCodec(store)

	codec.Save(validSession())
	codec.Clear()

	_, ok := codec.Load()
	assert.False(t, ok, "load after clear must report absent")

	// Clearing an already-empty slot is idempotent.
	codec.Clear()
	_, ok = codec.Load()
	assert.False(t, ok)
}

func TestCodecSaveOverwrites(t *testing.T) {
	store := session.NewMemoryStore()
	codec := session.NewCodec(store)

	first := validSession()
	codec.Save(first)

	second := validSession()
	second.WalletType = session.WalletLedger
	second.WalletName = ""
	second.Address = "neutron1xyz"
	second.ChainKey = "neutron"
	second.ChainDisplay = "Neutron"
	second.Network = session.NetworkTestnet
	second.ChainID = "pion-1"
	codec.Save(second)

	got, ok := codec.Load()
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestCodecRejectsMalformedData(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{not json`},
		{"json array", `["keplr"]`},
		{"json string", `"keplr"`},
		{"json number", `42`},
		{"json null", `null`},
		{"empty object", `{}`},
		{"unknown wallet type", `{"walletType":"trezor","address":"x","chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"unknown network", `{"walletType":"keplr","address":"x","chainKey":"c","chainDisplay":"d","network":"devnet","chainId":"i","signedInAt":"t"}`},
		{"missing address", `{"walletType":"keplr","chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"empty address", `{"walletType":"keplr","address":"","chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"empty chain key", `{"walletType":"keplr","address":"x","chainKey":"","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"empty chain display", `{"walletType":"keplr","address":"x","chainKey":"c","chainDisplay":"","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"empty chain id", `{"walletType":"keplr","address":"x","chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"","signedInAt":"t"}`},
		{"empty signed in at", `{"walletType":"keplr","address":"x","chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":""}`},
		{"numeric address", `{"walletType":"keplr","address":7,"chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"numeric wallet name", `{"walletType":"keplr","address":"x","walletName":7,"chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"null wallet name", `{"walletType":"keplr","address":"x","walletName":null,"chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t"}`},
		{"boolean network", `{"walletType":"keplr","address":"x","chainKey":"c","chainDisplay":"d","network":true,"chainId":"i","signedInAt":"t"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := session.NewMemoryStore()
			store.SetItem(session.StorageKey, tc.raw)

			_, ok := session.NewCodec(store).Load()
			assert.False(t, ok, "expected absent for stored value %q", tc.raw)
		})
	}
}

func TestCodecAcceptsStoredJSON(t *testing.T) {
	t.Run("wallet name omitted", func(t *testing.T) {
		store := session.NewMemoryStore()
		store.SetItem(session.StorageKey, `{"walletType":"ledger","address":"archway1abc","chainKey":"archway","chainDisplay":"Archway","network":"testnet","chainId":"constantine-3","signedInAt":"2024-06-01T12:00:00Z"}`)

		got, ok := session.NewCodec(store).Load()
		require.True(t, ok)
		assert.Equal(t, session.DashboardSession{
			WalletType:   session.WalletLedger,
			Address:      "archway1abc",
			ChainKey:     "archway",
			ChainDisplay: "Archway",
			Network:      session.NetworkTestnet,
			ChainID:      "constantine-3",
			SignedInAt:   "2024-06-01T12:00:00Z",
		}, got)
	})

	t.Run("unknown extra fields are ignored", func(t *testing.T) {
		store := session.NewMemoryStore()
		store.SetItem(session.StorageKey, `{"walletType":"keplr","address":"x","chainKey":"c","chainDisplay":"d","network":"mainnet","chainId":"i","signedInAt":"t","theme":"dark"}`)

		_, ok := session.NewCodec(store).Load()
		assert.True(t, ok)
	})
}
