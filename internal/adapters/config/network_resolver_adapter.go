package config

import (
	"context"

	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
)

// NetworkResolverAdapter resolves networks from phodeploy.toml and the built-in list
type NetworkResolverAdapter struct {
	project *config.ProjectConfig
}

// NewNetworkResolverAdapter creates a new adapter
func NewNetworkResolverAdapter(cfg *config.RuntimeConfig) *NetworkResolverAdapter {
	project := cfg.Project
	if project == nil {
		project = config.DefaultProjectConfig()
	}
	return &NetworkResolverAdapter{project: project}
}

// GetNetworks returns all configured network names
func (a *NetworkResolverAdapter) GetNetworks(ctx context.Context) []string {
	return config.NetworkNames(a.project)
}

// ResolveNetwork resolves a network name to its configuration
func (a *NetworkResolverAdapter) ResolveNetwork(ctx context.Context, networkName string) (*domain.Network, error) {
	network, _, err := config.ResolveNetwork(a.project, networkName)
	return network, err
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
