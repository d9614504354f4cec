package config

import (
	"context"
	"testing"

	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkResolverAdapter(t *testing.T) {
	project := config.DefaultProjectConfig()
	project.Networks["mainnet"] = config.NetworkConfig{RPCURL: "https://eth.example", ChainID: 1}
	project.Networks["bsc"] = config.NetworkConfig{ChainID: 56}

	a := NewNetworkResolverAdapter(&config.RuntimeConfig{Project: project})
	ctx := context.Background()

	assert.Equal(t, []string{"bsc", "localhost", "mainnet"}, a.GetNetworks(ctx))

	network, err := a.ResolveNetwork(ctx, "mainnet")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), network.ChainID)

	_, err = a.ResolveNetwork(ctx, "bsc")
	assert.ErrorIs(t, err, domain.ErrNetworkNotConfigured)
}

func TestNetworkResolverAdapter_NoProject(t *testing.T) {
	a := NewNetworkResolverAdapter(&config.RuntimeConfig{})
	assert.Equal(t, []string{"localhost"}, a.GetNetworks(context.Background()))
}
