package usecase_test

import (
	"context"
	"testing"

	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	resolver := new(MockNetworkResolver)
	resolver.On("GetNetworks", ctx).Return([]string{"localhost", "mainnet"})
	resolver.On("ResolveNetwork", ctx, "localhost").Return(&domain.Network{Name: "localhost", ChainID: 31337, RPCURL: "http://127.0.0.1:8545"}, nil)
	resolver.On("ResolveNetwork", ctx, "mainnet").Return(&domain.Network{Name: "mainnet", ChainID: 1, RPCURL: "https://eth.example"}, nil)
	resolver.On("ResolveNetwork", ctx, "heco").Return(nil, domain.ErrNetworkNotConfigured)

	registry := newMemRegistry(map[string]map[string]string{
		"mainnet": {"pho": "0xA", "dev": "0xB"},
		"heco":    {"pho": "0xC"},
	})

	uc := usecase.NewListNetworks(resolver, registry, usecase.CurrentNetwork("mainnet"))
	result, err := uc.Run(ctx, usecase.ListNetworksParams{})
	require.NoError(t, err)

	assert.Equal(t, "mainnet", result.Current)
	require.Len(t, result.Networks, 3)

	assert.Equal(t, "heco", result.Networks[0].Name)
	assert.ErrorIs(t, result.Networks[0].Error, domain.ErrNetworkNotConfigured)
	assert.Equal(t, 1, result.Networks[0].Contracts)

	assert.Equal(t, "localhost", result.Networks[1].Name)
	assert.Equal(t, uint64(31337), result.Networks[1].ChainID)
	assert.Equal(t, 0, result.Networks[1].Contracts)

	assert.Equal(t, "mainnet", result.Networks[2].Name)
	assert.Equal(t, 2, result.Networks[2].Contracts)
}
