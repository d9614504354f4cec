package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Logical contract names used as registry keys
const (
	ContractPho  = "pho"
	ContractDev  = "dev"
	ContractFarm = "farm"
)

// Contract artifact names
const (
	FarmArtifactName         = "PhoSwapFarming"
	ProxyAdminArtifactName   = "ProxyAdmin"
	TransparentProxyArtifact = "TransparentUpgradeableProxy"
)

// Default farm initializer parameters
const (
	DefaultPhoPerBlock = "40000000000000000000"
	DefaultStartBlock  = "10031542"
)

// ContractEntry is a single name -> address record of the registry
type ContractEntry struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

// Network is a resolved network the CLI talks to
type Network struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint64 `json:"chainId"`

	// ProxyAdmin is an existing ProxyAdmin to reuse for new proxies (optional)
	ProxyAdmin string `json:"proxyAdmin,omitempty"`
}

// FarmParams holds the PhoSwapFarming initializer parameters that are not
// taken from the registry.
type FarmParams struct {
	PhoPerBlock string
	StartBlock  string
}

// ProxyDeployment is the outcome of a proxy deployment or upgrade
type ProxyDeployment struct {
	Proxy          common.Address
	Implementation common.Address
	Admin          common.Address
	TxHashes       []common.Hash
}

// NormalizeAddress validates a hex address and returns its EIP-55 form.
func NormalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", ErrInvalidAddress
	}
	return common.HexToAddress(address).Hex(), nil
}

// ParseInteger parses a base-10 string, or a base-16 string after an explicit
// 0x prefix, with an optional leading minus sign. Leading zeros stay decimal;
// 0b/0o prefixes and _ separators are rejected.
func ParseInteger(s string) (*big.Int, bool) {
	body, negative := strings.CutPrefix(s, "-")
	base := 10
	if hex, ok := strings.CutPrefix(body, "0x"); ok {
		body, base = hex, 16
	} else if hex, ok := strings.CutPrefix(body, "0X"); ok {
		body, base = hex, 16
	}
	if body == "" || body[0] == '+' || body[0] == '-' {
		return nil, false
	}

	v, ok := new(big.Int).SetString(body, base)
	if !ok {
		return nil, false
	}
	if negative {
		v.Neg(v)
	}
	return v, true
}

// ParseUint256 parses a decimal or 0x-prefixed hex string into a non-negative big.Int.
func ParseUint256(s string) (*big.Int, bool) {
	v, ok := ParseInteger(s)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, false
	}
	return v, true
}
