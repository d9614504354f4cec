package usecase_test

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// MockContractRegistry is a mock implementation of ContractRegistry
type MockContractRegistry struct {
	mock.Mock
}

func (m *MockContractRegistry) GetContracts(ctx context.Context, network string) (map[string]string, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockContractRegistry) SaveContract(ctx context.Context, network, name, address string) error {
	args := m.Called(ctx, network, name, address)
	return args.Error(0)
}

func (m *MockContractRegistry) ListNetworks(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockArtifactLoader is a mock implementation of ArtifactLoader
type MockArtifactLoader struct {
	mock.Mock
}

func (m *MockArtifactLoader) LoadArtifact(ctx context.Context, contractName string) (*domain.Artifact, error) {
	args := m.Called(ctx, contractName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

// MockProxyDeployer is a mock implementation of ProxyDeployer
type MockProxyDeployer struct {
	mock.Mock
}

func (m *MockProxyDeployer) DeployProxy(ctx context.Context, artifact *domain.Artifact, args []any) (*domain.ProxyDeployment, error) {
	ret := m.Called(ctx, artifact, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.ProxyDeployment), ret.Error(1)
}

func (m *MockProxyDeployer) UpgradeProxy(ctx context.Context, proxy common.Address, artifact *domain.Artifact) (*domain.ProxyDeployment, error) {
	ret := m.Called(ctx, proxy, artifact)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(*domain.ProxyDeployment), ret.Error(1)
}

// MockChainChecker is a mock implementation of ChainChecker
type MockChainChecker struct {
	mock.Mock
}

func (m *MockChainChecker) CheckDeploymentExists(ctx context.Context, address string) (bool, string, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.String(1), args.Error(2)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// acceptingConfirmer approves every prompt
func acceptingConfirmer() *MockConfirmer {
	c := new(MockConfirmer)
	c.On("Confirm", mock.Anything, mock.Anything).Return(true, nil)
	return c
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, networkName string) (*domain.Network, error) {
	args := m.Called(ctx, networkName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Network), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

func (m *MockProgressSink) stages() []usecase.ExecutionStage {
	stages := make([]usecase.ExecutionStage, len(m.events))
	for i, e := range m.events {
		stages[i] = e.Stage
	}
	return stages
}

// memRegistry is an in-memory ContractRegistry that accepts any address string
type memRegistry struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

func newMemRegistry(data map[string]map[string]string) *memRegistry {
	if data == nil {
		data = make(map[string]map[string]string)
	}
	return &memRegistry{data: data}
}

func (r *memRegistry) GetContracts(_ context.Context, network string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string)
	for k, v := range r.data[network] {
		out[k] = v
	}
	return out, nil
}

func (r *memRegistry) SaveContract(_ context.Context, network, name, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[network] == nil {
		r.data[network] = make(map[string]string)
	}
	r.data[network][name] = address
	return nil
}

func (r *memRegistry) ListNetworks(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for k := range r.data {
		out = append(out, k)
	}
	return out, nil
}

var (
	_ usecase.ContractRegistry = (*MockContractRegistry)(nil)
	_ usecase.ContractRegistry = (*memRegistry)(nil)
	_ usecase.ArtifactLoader   = (*MockArtifactLoader)(nil)
	_ usecase.ProxyDeployer    = (*MockProxyDeployer)(nil)
	_ usecase.ChainChecker     = (*MockChainChecker)(nil)
	_ usecase.Confirmer        = (*MockConfirmer)(nil)
	_ usecase.NetworkResolver  = (*MockNetworkResolver)(nil)
	_ usecase.ProgressSink     = (*MockProgressSink)(nil)
)
