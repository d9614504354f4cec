package app

import (
	"github.com/phoswap/phodeploy/internal/adapters/blockchain"
	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployFarm    *usecase.DeployFarm
	UpgradeFarm   *usecase.UpgradeFarm
	ListContracts *usecase.ListContracts
	ShowContract  *usecase.ShowContract
	SetContract   *usecase.SetContract
	ListNetworks  *usecase.ListNetworks

	// Adapters holding RPC connections
	deployer *blockchain.ProxyDeployerAdapter
	checker  *blockchain.CheckerAdapter
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployFarm *usecase.DeployFarm,
	upgradeFarm *usecase.UpgradeFarm,
	listContracts *usecase.ListContracts,
	showContract *usecase.ShowContract,
	setContract *usecase.SetContract,
	listNetworks *usecase.ListNetworks,
	deployer *blockchain.ProxyDeployerAdapter,
	checker *blockchain.CheckerAdapter,
) (*App, error) {
	return &App{
		Config:        cfg,
		DeployFarm:    deployFarm,
		UpgradeFarm:   upgradeFarm,
		ListContracts: listContracts,
		ShowContract:  showContract,
		SetContract:   setContract,
		ListNetworks:  listNetworks,
		deployer:      deployer,
		checker:       checker,
	}, nil
}

// Close releases RPC connections opened during the command
func (a *App) Close() {
	a.deployer.Close()
	a.checker.Close()
}
