package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/phoswap/phodeploy/internal/domain"
)

// dial connects to the network RPC and verifies its chain ID.
// A ChainID of 0 in the network accepts whatever the node reports.
func dial(ctx context.Context, network *domain.Network) (*ethclient.Client, *big.Int, error) {
	if network == nil || network.RPCURL == "" {
		return nil, nil, domain.ErrNetworkNotConfigured
	}

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		client.Close()
		return nil, nil, fmt.Errorf("%w: %s expects %d, RPC reports %d",
			domain.ErrChainIDMismatch, network.Name, network.ChainID, chainID.Uint64())
	}

	return client, chainID, nil
}

// parsePrivateKey accepts a hex private key with or without 0x prefix
func parsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, fmt.Errorf("no private key configured (set PHODEPLOY_PRIVATE_KEY or networks.<name>.private_key)")
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}
