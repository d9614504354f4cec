package config

import (
	"fmt"
	"sort"

	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/samber/lo"
)

// builtinNetworks are usable without a [networks] entry
var builtinNetworks = map[string]NetworkConfig{
	"localhost": {RPCURL: "http://127.0.0.1:8545", ChainID: 31337},
}

// ResolveNetwork resolves a network name to its RPC configuration.
// Entries in phodeploy.toml take precedence over built-in networks.
func ResolveNetwork(project *ProjectConfig, name string) (*domain.Network, NetworkConfig, error) {
	if name == "" {
		return nil, NetworkConfig{}, fmt.Errorf("%w: empty network name", domain.ErrInvalidName)
	}

	nc, ok := project.Networks[name]
	if !ok {
		nc, ok = builtinNetworks[name]
	}
	if !ok || nc.RPCURL == "" {
		return nil, NetworkConfig{}, fmt.Errorf("%w: '%s' has no rpc_url in %s", domain.ErrNetworkNotConfigured, name, ProjectFile)
	}

	return &domain.Network{
		Name:       name,
		RPCURL:     nc.RPCURL,
		ChainID:    nc.ChainID,
		ProxyAdmin: nc.ProxyAdmin,
	}, nc, nil
}

// NetworkNames returns every network that can be resolved, sorted
func NetworkNames(project *ProjectConfig) []string {
	names := lo.Uniq(append(lo.Keys(project.Networks), lo.Keys(builtinNetworks)...))
	sort.Strings(names)
	return names
}
