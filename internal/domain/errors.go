package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidName is returned when a contract name or network name is empty
	ErrInvalidName = errors.New("invalid name")

	// ErrNetworkNotConfigured is returned when a network has no RPC endpoint
	ErrNetworkNotConfigured = errors.New("network not configured")

	// ErrChainIDMismatch is returned when the RPC reports a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrAborted is returned when the operator declines a broadcast
	ErrAborted = errors.New("aborted")
)

// ConfigLookupError is returned when a contract the operation depends on
// has no entry in the registry for the active network.
type ConfigLookupError struct {
	Network string
	Name    string
	// Known holds the names that are registered on Network, for hints.
	Known []string
}

func (e *ConfigLookupError) Error() string {
	return fmt.Sprintf("contract %q not found in registry for network %q", e.Name, e.Network)
}

func (e *ConfigLookupError) Unwrap() error {
	return ErrNotFound
}

// ExternalCallError wraps a failure of a proxy deployment or upgrade.
type ExternalCallError struct {
	Op  string
	Err error
}

func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a read or write failure of the contract registry.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("registry %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
