//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/phoswap/phodeploy/internal/adapters"
	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/logging"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployFarm,
		usecase.NewUpgradeFarm,
		usecase.NewListContracts,
		usecase.NewShowContract,
		usecase.NewSetContract,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
