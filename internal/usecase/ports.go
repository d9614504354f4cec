package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/phoswap/phodeploy/internal/domain"
)

// ContractRegistry persists the per-network name -> address mapping.
//
// GetContracts returns an empty, non-nil map for a network that was never
// written. SaveContract is durable before it returns.
type ContractRegistry interface {
	GetContracts(ctx context.Context, network string) (map[string]string, error)
	SaveContract(ctx context.Context, network, name, address string) error
	ListNetworks(ctx context.Context) ([]string, error)
}

// ArtifactLoader resolves compiled contract artifacts by contract name
type ArtifactLoader interface {
	LoadArtifact(ctx context.Context, contractName string) (*domain.Artifact, error)
}

// ProxyDeployer performs proxy deployments and upgrades on-chain.
// Both calls block until the transactions are mined.
type ProxyDeployer interface {
	DeployProxy(ctx context.Context, artifact *domain.Artifact, args []any) (*domain.ProxyDeployment, error)
	UpgradeProxy(ctx context.Context, proxy common.Address, artifact *domain.Artifact) (*domain.ProxyDeployment, error)
}

// ChainChecker answers read-only questions about on-chain state
type ChainChecker interface {
	CheckDeploymentExists(ctx context.Context, address string) (exists bool, reason string, err error)
}

// Confirmer asks the operator before broadcasting transactions
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ExecutionStage represents a stage in the execution process
type ExecutionStage string

const (
	StageResolving    ExecutionStage = "Resolving"
	StageBroadcasting ExecutionStage = "Broadcasting"
	StageUpdating     ExecutionStage = "Updating"
	StageCompleted    ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// NetworkResolver resolves network names to RPC settings
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*domain.Network, error)
}

// CurrentNetwork is the network name selected with --network
type CurrentNetwork string
