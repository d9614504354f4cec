package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/samber/lo"
)

// DeployFarm deploys PhoSwapFarming behind a proxy and records it as "farm"
type DeployFarm struct {
	registry  ContractRegistry
	artifacts ArtifactLoader
	deployer  ProxyDeployer
	confirmer Confirmer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployFarm creates a new deploy farm use case
func NewDeployFarm(
	registry ContractRegistry,
	artifacts ArtifactLoader,
	deployer ProxyDeployer,
	confirmer Confirmer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployFarm {
	return &DeployFarm{
		registry:  registry,
		artifacts: artifacts,
		deployer:  deployer,
		confirmer: confirmer,
		progress:  progress,
		log:       log.With("usecase", "deploy_farm"),
	}
}

// DeployFarmParams contains parameters for the farm deployment
type DeployFarmParams struct {
	Network string
	Farm    domain.FarmParams
}

// DeployFarmResult contains the result of the farm deployment
type DeployFarmResult struct {
	Network    string
	Pho        string
	Dev        string
	Farm       domain.FarmParams
	Deployment *domain.ProxyDeployment
}

// Execute deploys the farm proxy and saves its address
func (d *DeployFarm) Execute(ctx context.Context, params DeployFarmParams) (*DeployFarmResult, error) {
	d.progress.OnProgress(ctx, ProgressEvent{Stage: StageResolving, Message: "Loading registry"})

	contracts, err := d.registry.GetContracts(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	pho, err := lookupContract(contracts, params.Network, domain.ContractPho)
	if err != nil {
		return nil, err
	}
	dev, err := lookupContract(contracts, params.Network, domain.ContractDev)
	if err != nil {
		return nil, err
	}
	if err := checkRegistryAddress(params.Network, domain.ContractPho, pho); err != nil {
		return nil, err
	}
	if err := checkRegistryAddress(params.Network, domain.ContractDev, dev); err != nil {
		return nil, err
	}
	d.log.Info("resolved dependencies", "network", params.Network, "pho", pho, "dev", dev)

	if _, ok := domain.ParseUint256(params.Farm.PhoPerBlock); !ok {
		return nil, fmt.Errorf("invalid pho per block %q: must be a uint256", params.Farm.PhoPerBlock)
	}
	if _, ok := domain.ParseUint256(params.Farm.StartBlock); !ok {
		return nil, fmt.Errorf("invalid start block %q: must be a uint256", params.Farm.StartBlock)
	}

	prompt := fmt.Sprintf("Deploy %s on %s (pho=%s, dev=%s)", domain.FarmArtifactName, params.Network, pho, dev)
	if err := confirmBroadcast(ctx, d.confirmer, prompt); err != nil {
		return nil, err
	}

	artifact, err := d.artifacts.LoadArtifact(ctx, domain.FarmArtifactName)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s artifact: %w", domain.FarmArtifactName, err)
	}

	d.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageBroadcasting,
		Message: fmt.Sprintf("Deploying %s proxy on %s", domain.FarmArtifactName, params.Network),
		Spinner: true,
	})

	args := []any{pho, dev, params.Farm.PhoPerBlock, params.Farm.StartBlock}
	deployment, err := d.deployer.DeployProxy(ctx, artifact, args)
	if err != nil {
		d.progress.Error(err.Error())
		return nil, asExternalCallError("deploy proxy", err)
	}

	d.progress.OnProgress(ctx, ProgressEvent{Stage: StageUpdating, Message: "Saving registry"})

	farm := deployment.Proxy.Hex()
	if err := d.registry.SaveContract(ctx, params.Network, domain.ContractFarm, farm); err != nil {
		d.log.Error("farm deployed but not recorded; run 'phodeploy contracts set farm <address>'",
			"network", params.Network, "address", farm, "error", err)
		return nil, fmt.Errorf("failed to record %s at %s: %w", domain.ContractFarm, farm, err)
	}

	d.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	d.log.Info("deployed farm", "network", params.Network, "proxy", farm,
		"implementation", deployment.Implementation.Hex())

	return &DeployFarmResult{
		Network:    params.Network,
		Pho:        pho,
		Dev:        dev,
		Farm:       params.Farm,
		Deployment: deployment,
	}, nil
}

// lookupContract returns the address registered for name on network
func lookupContract(contracts map[string]string, network, name string) (string, error) {
	address, ok := contracts[name]
	if !ok || address == "" {
		known := lo.Keys(contracts)
		sort.Strings(known)
		return "", &domain.ConfigLookupError{Network: network, Name: name, Known: known}
	}
	return address, nil
}

// checkRegistryAddress rejects registry entries that are not 20-byte hex addresses
func checkRegistryAddress(network, name, address string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("registry entry %s=%q on %s: %w", name, address, network, domain.ErrInvalidAddress)
	}
	return nil
}

// confirmBroadcast asks the operator before any transaction is sent
func confirmBroadcast(ctx context.Context, confirmer Confirmer, prompt string) error {
	ok, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAborted
	}
	return nil
}

// asExternalCallError wraps err unless it already is an ExternalCallError
func asExternalCallError(op string, err error) error {
	var callErr *domain.ExternalCallError
	if errors.As(err, &callErr) {
		return err
	}
	return &domain.ExternalCallError{Op: op, Err: err}
}
