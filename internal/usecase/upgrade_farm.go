package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/phoswap/phodeploy/internal/domain"
)

// UpgradeFarm swaps the PhoSwapFarming implementation behind the "farm" proxy
type UpgradeFarm struct {
	registry  ContractRegistry
	artifacts ArtifactLoader
	deployer  ProxyDeployer
	checker   ChainChecker
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewUpgradeFarm creates a new upgrade farm use case
func NewUpgradeFarm(
	registry ContractRegistry,
	artifacts ArtifactLoader,
	deployer ProxyDeployer,
	checker ChainChecker,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *UpgradeFarm {
	return &UpgradeFarm{
		registry:  registry,
		artifacts: artifacts,
		deployer:  deployer,
		checker:   checker,
		confirmer: confirmer,
		progress:  progress,
		log:       log.With("usecase", "upgrade_farm"),
	}
}

// UpgradeFarmParams contains parameters for the farm upgrade
type UpgradeFarmParams struct {
	Network string
	// SkipCodeCheck disables the pre-upgrade check that the proxy has code
	SkipCodeCheck bool
}

// UpgradeFarmResult contains the result of the farm upgrade
type UpgradeFarmResult struct {
	Network    string
	Deployment *domain.ProxyDeployment
}

// Execute upgrades the farm proxy and re-saves its address
func (u *UpgradeFarm) Execute(ctx context.Context, params UpgradeFarmParams) (*UpgradeFarmResult, error) {
	u.progress.OnProgress(ctx, ProgressEvent{Stage: StageResolving, Message: "Loading registry"})

	contracts, err := u.registry.GetContracts(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	farm, err := lookupContract(contracts, params.Network, domain.ContractFarm)
	if err != nil {
		return nil, err
	}
	if err := checkRegistryAddress(params.Network, domain.ContractFarm, farm); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Upgrade %s proxy %s on %s", domain.FarmArtifactName, farm, params.Network)
	if err := confirmBroadcast(ctx, u.confirmer, prompt); err != nil {
		return nil, err
	}

	if !params.SkipCodeCheck {
		exists, reason, err := u.checker.CheckDeploymentExists(ctx, farm)
		if err != nil {
			return nil, asExternalCallError("check proxy code", err)
		}
		if !exists {
			return nil, fmt.Errorf("farm proxy %s on %s cannot be upgraded: %s", farm, params.Network, reason)
		}
	}

	artifact, err := u.artifacts.LoadArtifact(ctx, domain.FarmArtifactName)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s artifact: %w", domain.FarmArtifactName, err)
	}

	u.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageBroadcasting,
		Message: fmt.Sprintf("Upgrading %s proxy %s on %s", domain.FarmArtifactName, farm, params.Network),
		Spinner: true,
	})

	deployment, err := u.deployer.UpgradeProxy(ctx, common.HexToAddress(farm), artifact)
	if err != nil {
		u.progress.Error(err.Error())
		return nil, asExternalCallError("upgrade proxy", err)
	}

	u.progress.OnProgress(ctx, ProgressEvent{Stage: StageUpdating, Message: "Saving registry"})

	address := deployment.Proxy.Hex()
	if err := u.registry.SaveContract(ctx, params.Network, domain.ContractFarm, address); err != nil {
		u.log.Error("farm upgraded but not recorded; run 'phodeploy contracts set farm <address>'",
			"network", params.Network, "address", address, "error", err)
		return nil, fmt.Errorf("failed to record %s at %s: %w", domain.ContractFarm, address, err)
	}

	u.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	u.log.Info("upgraded farm", "network", params.Network, "proxy", address,
		"implementation", deployment.Implementation.Hex())

	return &UpgradeFarmResult{
		Network:    params.Network,
		Deployment: deployment,
	}, nil
}
