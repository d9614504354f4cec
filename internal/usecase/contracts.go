package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/samber/lo"
)

// NetworkContracts groups the registry entries of one network
type NetworkContracts struct {
	Network   string                 `json:"network" yaml:"network"`
	Contracts []domain.ContractEntry `json:"contracts" yaml:"contracts"`
}

// ContractListResult contains the result of listing registry entries
type ContractListResult struct {
	Networks []NetworkContracts `json:"networks" yaml:"networks"`
}

// ListContracts lists registry entries
type ListContracts struct {
	registry ContractRegistry
}

// NewListContracts creates a new list contracts use case
func NewListContracts(registry ContractRegistry) *ListContracts {
	return &ListContracts{registry: registry}
}

// ListContractsParams contains parameters for listing
type ListContractsParams struct {
	Network string
	// All lists every network in the registry instead of Network
	All bool
}

// Execute lists the entries of one or all networks, sorted by name
func (l *ListContracts) Execute(ctx context.Context, params ListContractsParams) (*ContractListResult, error) {
	networks := []string{params.Network}
	if params.All {
		var err error
		networks, err = l.registry.ListNetworks(ctx)
		if err != nil {
			return nil, err
		}
	}

	result := &ContractListResult{Networks: make([]NetworkContracts, 0, len(networks))}
	for _, network := range networks {
		contracts, err := l.registry.GetContracts(ctx, network)
		if err != nil {
			return nil, err
		}
		result.Networks = append(result.Networks, NetworkContracts{
			Network:   network,
			Contracts: sortedEntries(contracts),
		})
	}

	return result, nil
}

func sortedEntries(contracts map[string]string) []domain.ContractEntry {
	entries := lo.MapToSlice(contracts, func(name, address string) domain.ContractEntry {
		return domain.ContractEntry{Name: name, Address: address}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// ShowContract looks up a single registry entry
type ShowContract struct {
	registry ContractRegistry
}

// NewShowContract creates a new show contract use case
func NewShowContract(registry ContractRegistry) *ShowContract {
	return &ShowContract{registry: registry}
}

// Execute returns the entry for name on network or a ConfigLookupError
func (s *ShowContract) Execute(ctx context.Context, network, name string) (*domain.ContractEntry, error) {
	contracts, err := s.registry.GetContracts(ctx, network)
	if err != nil {
		return nil, err
	}

	address, err := lookupContract(contracts, network, name)
	if err != nil {
		return nil, err
	}

	return &domain.ContractEntry{Name: name, Address: address}, nil
}

// SetContract records an address manually, e.g. to reconcile a deployment
// whose registry write failed.
type SetContract struct {
	registry ContractRegistry
	progress ProgressSink
}

// NewSetContract creates a new set contract use case
func NewSetContract(registry ContractRegistry, progress ProgressSink) *SetContract {
	return &SetContract{registry: registry, progress: progress}
}

// SetContractResult contains the stored entry and the one it replaced
type SetContractResult struct {
	Network  string
	Entry    domain.ContractEntry
	Previous string
}

// Execute upserts name -> address on network
func (s *SetContract) Execute(ctx context.Context, network, name, address string) (*SetContractResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: contract name is empty", domain.ErrInvalidName)
	}

	normalized, err := domain.NormalizeAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", address, err)
	}

	contracts, err := s.registry.GetContracts(ctx, network)
	if err != nil {
		return nil, err
	}

	if err := s.registry.SaveContract(ctx, network, name, normalized); err != nil {
		return nil, err
	}

	s.progress.Info(fmt.Sprintf("Recorded %s=%s on %s", name, normalized, network))

	return &SetContractResult{
		Network:  network,
		Entry:    domain.ContractEntry{Name: name, Address: normalized},
		Previous: contracts[name],
	}, nil
}
