package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is a compiled contract as emitted by Hardhat
type Artifact struct {
	ContractName string
	SourceName   string
	ABI          abi.ABI
	Bytecode     []byte
	Path         string
}

// HasInitializer reports whether the artifact exposes an initialize method
func (a *Artifact) HasInitializer() bool {
	_, ok := a.ABI.Methods["initialize"]
	return ok
}
