package blockchain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/usecase"
)

// CheckerAdapter implements the ChainChecker interface using ethclient
type CheckerAdapter struct {
	cfg *config.RuntimeConfig

	mu     sync.Mutex
	client *ethclient.Client
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter(cfg *config.RuntimeConfig) *CheckerAdapter {
	return &CheckerAdapter{cfg: cfg}
}

func (c *CheckerAdapter) connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return nil
	}
	client, _, err := dial(ctx, c.cfg.Network)
	if err != nil {
		return err
	}
	c.client = client
	return nil
}

// CheckDeploymentExists checks if a contract exists at the given address
func (c *CheckerAdapter) CheckDeploymentExists(ctx context.Context, address string) (exists bool, reason string, err error) {
	if !common.IsHexAddress(address) {
		return false, "invalid address", nil
	}
	if err := c.connect(ctx); err != nil {
		return false, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	code, err := c.client.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return false, "", fmt.Errorf("failed to check code: %w", err)
	}

	// If no code at address, contract doesn't exist
	if len(code) == 0 {
		return false, "no code at address", nil
	}

	return true, "", nil
}

// Close releases the RPC connection
func (c *CheckerAdapter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

// Ensure the adapter implements the interface
var _ usecase.ChainChecker = (*CheckerAdapter)(nil)
