package usecase

import (
	"context"
	"sort"

	"github.com/samber/lo"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct{}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	ChainID uint64
	RPCURL  string
	// Contracts is the number of registry entries recorded for the network
	Contracts int
	Error     error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	registry ContractRegistry
	current  string
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, registry ContractRegistry, current CurrentNetwork) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		registry: registry,
		current:  string(current),
	}
}

// Run lists configured networks plus any network that only exists in the registry
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	recorded, err := uc.registry.ListNetworks(ctx)
	if err != nil {
		return nil, err
	}

	names := lo.Uniq(append(uc.resolver.GetNetworks(ctx), recorded...))
	sort.Strings(names)

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
		} else {
			status.ChainID = info.ChainID
			status.RPCURL = info.RPCURL
		}

		contracts, err := uc.registry.GetContracts(ctx, name)
		if err != nil {
			return nil, err
		}
		status.Contracts = len(contracts)

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.current,
	}, nil
}
