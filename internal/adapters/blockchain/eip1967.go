package blockchain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// EIP-1967 storage slots: keccak256(label) - 1
var (
	ImplementationSlot = eip1967Slot("eip1967.proxy.implementation")
	AdminSlot          = eip1967Slot("eip1967.proxy.admin")
)

func eip1967Slot(label string) common.Hash {
	slot := crypto.Keccak256Hash([]byte(label)).Big()
	return common.BigToHash(slot.Sub(slot, big.NewInt(1)))
}

type storageReader interface {
	StorageAt(ctx context.Context, account common.Address, key common.Hash, blockNumber *big.Int) ([]byte, error)
}

// readSlotAddress reads an address stored right-aligned in a storage slot
func readSlotAddress(ctx context.Context, r storageReader, proxy common.Address, slot common.Hash) (common.Address, error) {
	value, err := r.StorageAt(ctx, proxy, slot, nil)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(value), nil
}
