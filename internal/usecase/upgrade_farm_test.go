package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpgradeFarm(t *testing.T) {
	ctx := context.Background()

	t.Run("upgrades the registered proxy", func(t *testing.T) {
		registry := newMemRegistry(map[string]map[string]string{
			"mainnet": {"pho": "0xA", "dev": "0xB", "farm": testFarmProxy.Hex()},
		})
		artifacts := new(MockArtifactLoader)
		deployer := new(MockProxyDeployer)
		checker := new(MockChainChecker)
		sink := &MockProgressSink{}

		artifact := farmArtifact()
		checker.On("CheckDeploymentExists", ctx, testFarmProxy.Hex()).Return(true, "", nil)
		artifacts.On("LoadArtifact", ctx, domain.FarmArtifactName).Return(artifact, nil)
		deployer.On("UpgradeProxy", ctx, testFarmProxy, artifact).Return(&domain.ProxyDeployment{
			Proxy:          testFarmProxy,
			Implementation: testFarmImpl,
			Admin:          testAdmin,
		}, nil)

		uc := usecase.NewUpgradeFarm(registry, artifacts, deployer, checker, acceptingConfirmer(), sink, discardLogger())
		result, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet"})
		require.NoError(t, err)

		assert.Equal(t, testFarmImpl, result.Deployment.Implementation)

		contracts, _ := registry.GetContracts(ctx, "mainnet")
		assert.Equal(t, map[string]string{
			"pho":  "0xA",
			"dev":  "0xB",
			"farm": testFarmProxy.Hex(),
		}, contracts)

		deployer.AssertExpectations(t)
		checker.AssertExpectations(t)
		assert.Equal(t, usecase.StageCompleted, sink.events[len(sink.events)-1].Stage)
	})

	t.Run("missing farm fails before any external call", func(t *testing.T) {
		registry := newMemRegistry(map[string]map[string]string{
			"mainnet": {"pho": "0xA", "dev": "0xB"},
		})
		artifacts := new(MockArtifactLoader)
		deployer := new(MockProxyDeployer)
		checker := new(MockChainChecker)
		confirmer := new(MockConfirmer)

		uc := usecase.NewUpgradeFarm(registry, artifacts, deployer, checker, confirmer, usecase.NopProgress{}, discardLogger())
		_, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet"})

		var lookupErr *domain.ConfigLookupError
		require.True(t, errors.As(err, &lookupErr))
		assert.Equal(t, "farm", lookupErr.Name)
		assert.Equal(t, []string{"dev", "pho"}, lookupErr.Known)

		confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
		deployer.AssertNotCalled(t, "UpgradeProxy", mock.Anything, mock.Anything, mock.Anything)
		checker.AssertNotCalled(t, "CheckDeploymentExists", mock.Anything, mock.Anything)
		artifacts.AssertNotCalled(t, "LoadArtifact", mock.Anything, mock.Anything)
	})

	t.Run("declined confirmation sends nothing", func(t *testing.T) {
		registry := newMemRegistry(map[string]map[string]string{
			"mainnet": {"farm": testFarmProxy.Hex()},
		})
		deployer := new(MockProxyDeployer)
		checker := new(MockChainChecker)
		confirmer := new(MockConfirmer)
		confirmer.On("Confirm", ctx, mock.Anything).Return(false, nil)

		uc := usecase.NewUpgradeFarm(registry, new(MockArtifactLoader), deployer, checker, confirmer, usecase.NopProgress{}, discardLogger())
		_, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet"})
		assert.ErrorIs(t, err, domain.ErrAborted)

		checker.AssertNotCalled(t, "CheckDeploymentExists", mock.Anything, mock.Anything)
		deployer.AssertNotCalled(t, "UpgradeProxy", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed farm address", func(t *testing.T) {
		registry := newMemRegistry(map[string]map[string]string{
			"mainnet": {"farm": "0xC"},
		})
		deployer := new(MockProxyDeployer)

		uc := usecase.NewUpgradeFarm(registry, new(MockArtifactLoader), deployer, new(MockChainChecker), acceptingConfirmer(), usecase.NopProgress{}, discardLogger())
		_, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet"})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
		deployer.AssertNotCalled(t, "UpgradeProxy", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no code at proxy", func(t *testing.T) {
		registry := newMemRegistry(map[string]map[string]string{
			"mainnet": {"farm": testFarmProxy.Hex()},
		})
		deployer := new(MockProxyDeployer)
		checker := new(MockChainChecker)
		checker.On("CheckDeploymentExists", ctx, testFarmProxy.Hex()).Return(false, "no code at address", nil)

		uc := usecase.NewUpgradeFarm(registry, new(MockArtifactLoader), deployer, checker, acceptingConfirmer(), usecase.NopProgress{}, discardLogger())
		_, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet"})
		assert.ErrorContains(t, err, "no code at address")
		deployer.AssertNotCalled(t, "UpgradeProxy", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("skip code check", func(t *testing.T) {
		registry := newMemRegistry(map[string]map[string]string{
			"mainnet": {"farm": testFarmProxy.Hex()},
		})
		artifacts := new(MockArtifactLoader)
		deployer := new(MockProxyDeployer)
		checker := new(MockChainChecker)

		artifacts.On("LoadArtifact", ctx, domain.FarmArtifactName).Return(farmArtifact(), nil)
		deployer.On("UpgradeProxy", ctx, testFarmProxy, mock.Anything).Return(&domain.ProxyDeployment{Proxy: testFarmProxy}, nil)

		uc := usecase.NewUpgradeFarm(registry, artifacts, deployer, checker, acceptingConfirmer(), usecase.NopProgress{}, discardLogger())
		_, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet", SkipCodeCheck: true})
		require.NoError(t, err)
		checker.AssertNotCalled(t, "CheckDeploymentExists", mock.Anything, mock.Anything)
	})

	t.Run("upgrade failure leaves registry untouched", func(t *testing.T) {
		registry := new(MockContractRegistry)
		artifacts := new(MockArtifactLoader)
		deployer := new(MockProxyDeployer)
		checker := new(MockChainChecker)

		registry.On("GetContracts", ctx, "mainnet").Return(map[string]string{"farm": testFarmProxy.Hex()}, nil)
		checker.On("CheckDeploymentExists", ctx, testFarmProxy.Hex()).Return(true, "", nil)
		artifacts.On("LoadArtifact", ctx, domain.FarmArtifactName).Return(farmArtifact(), nil)
		deployer.On("UpgradeProxy", ctx, testFarmProxy, mock.Anything).Return(nil, errors.New("execution reverted: Ownable: caller is not the owner"))

		uc := usecase.NewUpgradeFarm(registry, artifacts, deployer, checker, acceptingConfirmer(), usecase.NopProgress{}, discardLogger())
		_, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet"})

		var callErr *domain.ExternalCallError
		require.True(t, errors.As(err, &callErr))
		assert.Equal(t, "upgrade proxy", callErr.Op)
		registry.AssertNotCalled(t, "SaveContract", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("checker failure is an external call error", func(t *testing.T) {
		registry := newMemRegistry(map[string]map[string]string{
			"mainnet": {"farm": testFarmProxy.Hex()},
		})
		checker := new(MockChainChecker)
		checker.On("CheckDeploymentExists", ctx, testFarmProxy.Hex()).Return(false, "", errors.New("dial tcp: connection refused"))

		uc := usecase.NewUpgradeFarm(registry, new(MockArtifactLoader), new(MockProxyDeployer), checker, acceptingConfirmer(), usecase.NopProgress{}, discardLogger())
		_, err := uc.Execute(ctx, usecase.UpgradeFarmParams{Network: "mainnet"})

		var callErr *domain.ExternalCallError
		require.True(t, errors.As(err, &callErr))
		assert.Equal(t, "check proxy code", callErr.Op)
	})
}
