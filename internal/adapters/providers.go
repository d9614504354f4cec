package adapters

import (
	"github.com/google/wire"
	"github.com/phoswap/phodeploy/internal/adapters/blockchain"
	internalconfig "github.com/phoswap/phodeploy/internal/adapters/config"
	"github.com/phoswap/phodeploy/internal/adapters/fs"
	"github.com/phoswap/phodeploy/internal/adapters/interactive"
	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/usecase"
)

// ProvideCurrentNetwork provides the selected network name from RuntimeConfig
func ProvideCurrentNetwork(cfg *config.RuntimeConfig) usecase.CurrentNetwork {
	return usecase.CurrentNetwork(cfg.NetworkName)
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewRegistryStoreAdapter,
	wire.Bind(new(usecase.ContractRegistry), new(*fs.RegistryStoreAdapter)),

	fs.NewArtifactLoaderAdapter,
	wire.Bind(new(usecase.ArtifactLoader), new(*fs.ArtifactLoaderAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainChecker), new(*blockchain.CheckerAdapter)),

	blockchain.NewProxyDeployerAdapter,
	wire.Bind(new(usecase.ProxyDeployer), new(*blockchain.ProxyDeployerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideCurrentNetwork,

	FSSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
