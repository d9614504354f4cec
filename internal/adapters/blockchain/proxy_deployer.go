package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
)

// ProxyDeployerAdapter deploys and upgrades OpenZeppelin transparent proxies.
//
// A deployment sends up to three transactions: the implementation, a
// ProxyAdmin (unless the network names one to reuse) and the
// TransparentUpgradeableProxy whose constructor calls initialize.
// An upgrade deploys the new implementation and calls
// ProxyAdmin.upgrade(proxy, implementation) on the admin found in the
// proxy's EIP-1967 admin slot, or upgradeAndCall(proxy, implementation, "")
// when the admin artifact only has that (OpenZeppelin 5).
type ProxyDeployerAdapter struct {
	cfg       *config.RuntimeConfig
	artifacts usecase.ArtifactLoader
	log       *slog.Logger

	mu      sync.Mutex
	backend chainBackend
	closeFn func()
	opts    *bind.TransactOpts
}

// chainBackend is the subset of ethclient.Client the deployer needs
type chainBackend interface {
	bind.ContractBackend
	bind.DeployBackend
	storageReader
}

// NewProxyDeployerAdapter creates a new proxy deployer. The RPC connection
// is opened on first use.
func NewProxyDeployerAdapter(cfg *config.RuntimeConfig, artifacts usecase.ArtifactLoader, log *slog.Logger) *ProxyDeployerAdapter {
	return &ProxyDeployerAdapter{
		cfg:       cfg,
		artifacts: artifacts,
		log:       log.With("component", "proxy_deployer"),
	}
}

// DeployProxy deploys artifact behind a new transparent proxy initialized with args
func (d *ProxyDeployerAdapter) DeployProxy(ctx context.Context, artifact *domain.Artifact, args []any) (*domain.ProxyDeployment, error) {
	initData, err := encodeInitializer(artifact, args)
	if err != nil {
		return nil, err
	}

	proxyArtifact, err := d.artifacts.LoadArtifact(ctx, domain.TransparentProxyArtifact)
	if err != nil {
		return nil, err
	}

	if err := d.connect(ctx); err != nil {
		return nil, err
	}

	result := &domain.ProxyDeployment{}

	impl, hash, err := d.deploy(ctx, artifact, nil)
	if err != nil {
		return nil, err
	}
	result.Implementation = impl
	result.TxHashes = append(result.TxHashes, hash)

	admin, hashes, err := d.resolveAdmin(ctx)
	if err != nil {
		return nil, err
	}
	result.Admin = admin
	result.TxHashes = append(result.TxHashes, hashes...)

	ctorInput, err := proxyArtifact.ABI.Pack("", impl, admin, initData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode proxy constructor: %w", err)
	}

	proxy, hash, err := d.deploy(ctx, proxyArtifact, ctorInput)
	if err != nil {
		return nil, err
	}
	result.Proxy = proxy
	result.TxHashes = append(result.TxHashes, hash)

	return result, nil
}

// UpgradeProxy deploys artifact as the new implementation of proxy
func (d *ProxyDeployerAdapter) UpgradeProxy(ctx context.Context, proxy common.Address, artifact *domain.Artifact) (*domain.ProxyDeployment, error) {
	adminArtifact, err := d.artifacts.LoadArtifact(ctx, domain.ProxyAdminArtifactName)
	if err != nil {
		return nil, err
	}

	if err := d.connect(ctx); err != nil {
		return nil, err
	}

	admin, err := readSlotAddress(ctx, d.backend, proxy, AdminSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to read admin slot of %s: %w", proxy.Hex(), err)
	}
	if admin == (common.Address{}) {
		return nil, fmt.Errorf("%s has no EIP-1967 admin; not a transparent proxy", proxy.Hex())
	}
	d.log.Debug("resolved proxy admin", "proxy", proxy.Hex(), "admin", admin.Hex())

	impl, hash, err := d.deploy(ctx, artifact, nil)
	if err != nil {
		return nil, err
	}
	result := &domain.ProxyDeployment{
		Proxy:          proxy,
		Implementation: impl,
		Admin:          admin,
		TxHashes:       []common.Hash{hash},
	}

	calldata, err := encodeUpgrade(adminArtifact, proxy, impl)
	if err != nil {
		return nil, err
	}

	contract := bind.NewBoundContract(admin, adminArtifact.ABI, d.backend, d.backend, d.backend)
	tx, err := contract.RawTransact(d.transactOpts(ctx), calldata)
	if err != nil {
		return nil, fmt.Errorf("failed to send upgrade transaction: %w", err)
	}
	if _, err := d.waitMined(ctx, tx); err != nil {
		return nil, err
	}
	result.TxHashes = append(result.TxHashes, tx.Hash())

	current, err := readSlotAddress(ctx, d.backend, proxy, ImplementationSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to read implementation slot: %w", err)
	}
	if current != impl {
		return nil, fmt.Errorf("proxy %s still points at %s after upgrade", proxy.Hex(), current.Hex())
	}

	return result, nil
}

// connect dials the configured network once and builds the signer
func (d *ProxyDeployerAdapter) connect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.backend != nil {
		return nil
	}

	key, err := parsePrivateKey(d.cfg.PrivateKey)
	if err != nil {
		return err
	}

	client, chainID, err := dial(ctx, d.cfg.Network)
	if err != nil {
		return err
	}

	d.backend = client
	d.closeFn = client.Close
	d.opts = bind.NewKeyedTransactor(key, chainID)
	d.log.Debug("connected", "network", d.cfg.Network.Name, "chain_id", chainID.Uint64(), "from", d.opts.From.Hex())
	return nil
}

func (d *ProxyDeployerAdapter) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *d.opts
	opts.Context = ctx
	return &opts
}

// resolveAdmin reuses the network's ProxyAdmin or deploys a fresh one
func (d *ProxyDeployerAdapter) resolveAdmin(ctx context.Context) (common.Address, []common.Hash, error) {
	if existing := d.cfg.Network.ProxyAdmin; existing != "" {
		if !common.IsHexAddress(existing) {
			return common.Address{}, nil, fmt.Errorf("proxy_admin %q: %w", existing, domain.ErrInvalidAddress)
		}
		d.log.Debug("reusing proxy admin", "admin", existing)
		return common.HexToAddress(existing), nil, nil
	}

	adminArtifact, err := d.artifacts.LoadArtifact(ctx, domain.ProxyAdminArtifactName)
	if err != nil {
		return common.Address{}, nil, err
	}
	admin, hash, err := d.deploy(ctx, adminArtifact, nil)
	if err != nil {
		return common.Address{}, nil, err
	}
	return admin, []common.Hash{hash}, nil
}

// deploy sends a creation transaction and waits until the code is on-chain
func (d *ProxyDeployerAdapter) deploy(ctx context.Context, artifact *domain.Artifact, ctorInput []byte) (common.Address, common.Hash, error) {
	d.log.Debug("deploying", "contract", artifact.ContractName)

	_, tx, err := bind.DeployContract(d.transactOpts(ctx), artifact.Bytecode, d.backend, ctorInput)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("failed to deploy %s: %w", artifact.ContractName, err)
	}

	address, err := bind.WaitDeployed(ctx, d.backend, tx.Hash())
	if err != nil {
		return common.Address{}, tx.Hash(), fmt.Errorf("%s deployment %s: %w", artifact.ContractName, tx.Hash().Hex(), err)
	}

	d.log.Info("deployed", "contract", artifact.ContractName, "address", address.Hex(), "tx", tx.Hash().Hex())
	return address, tx.Hash(), nil
}

func (d *ProxyDeployerAdapter) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, d.backend, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return receipt, nil
}

// encodeInitializer ABI-encodes initialize(args...) for the proxy constructor
func encodeInitializer(artifact *domain.Artifact, args []any) ([]byte, error) {
	method, ok := artifact.ABI.Methods["initialize"]
	if !ok {
		if len(args) == 0 {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("%s has no initialize method", artifact.ContractName)
	}

	converted, err := ConvertArgs(method.Inputs, args)
	if err != nil {
		return nil, fmt.Errorf("invalid %s.initialize arguments: %w", artifact.ContractName, err)
	}

	data, err := artifact.ABI.Pack("initialize", converted...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s.initialize: %w", artifact.ContractName, err)
	}
	return data, nil
}

// encodeUpgrade builds the ProxyAdmin call that points proxy at impl
func encodeUpgrade(adminArtifact *domain.Artifact, proxy, impl common.Address) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case hasMethod(adminArtifact, "upgrade"):
		data, err = adminArtifact.ABI.Pack("upgrade", proxy, impl)
	case hasMethod(adminArtifact, "upgradeAndCall"):
		data, err = adminArtifact.ABI.Pack("upgradeAndCall", proxy, impl, []byte{})
	default:
		return nil, fmt.Errorf("%s has neither upgrade nor upgradeAndCall", adminArtifact.ContractName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode upgrade call: %w", err)
	}
	return data, nil
}

func hasMethod(artifact *domain.Artifact, name string) bool {
	_, ok := artifact.ABI.Methods[name]
	return ok
}

// Close releases the RPC connection
func (d *ProxyDeployerAdapter) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closeFn != nil {
		d.closeFn()
	}
	d.backend = nil
	d.closeFn = nil
}

// Ensure the adapter implements the interface
var _ usecase.ProxyDeployer = (*ProxyDeployerAdapter)(nil)
