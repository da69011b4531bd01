package chains_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sudostake/onboard/internal/chains"
	"github.com/sudostake/onboard/internal/session"
)

func TestLookup(t *testing.T) {
	t.Run("resolves mainnet and testnet separately", func(t *testing.T) {
		mainnet, err := chains.Lookup("archway", session.NetworkMainnet)
		require.NoError(t, err)
		assert.Equal(t, "archway-1", mainnet.ChainID)

		testnet, err := chains.Lookup("archway", session.NetworkTestnet)
		require.NoError(t, err)
		assert.Equal(t, "constantine-3", testnet.ChainID)
	})

	t.Run("unknown chain key", func(t *testing.T) {
		_, err := chains.Lookup("osmosis", session.NetworkMainnet)
		assert.Error(t, err)
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := chains.Lookup("archway", session.Network("devnet"))
		assert.Error(t, err)
	})
}

func TestAll(t *testing.T) {
	mainnet := chains.All(session.NetworkMainnet)
	require.Len(t, mainnet, 2)
	for _, d := range mainnet {
		assert.Equal(t, session.NetworkMainnet, d.Network)
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"archway", "neutron"}, chains.Keys())
}
