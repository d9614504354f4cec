package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
	"github.com/samber/lo"
)

// RegistryFileName is the name of the registry file inside the data directory
const RegistryFileName = "contracts.json"

// registryFile is the on-disk layout: network -> contract name -> address
type registryFile map[string]map[string]string

// RegistryStoreAdapter implements ContractRegistry on a single JSON file.
// Every SaveContract rewrites the whole file through a temp file and rename,
// so readers never see a partially written registry.
type RegistryStoreAdapter struct {
	path string
}

// NewRegistryStoreAdapter creates a new RegistryStoreAdapter under cfg.DataDir
func NewRegistryStoreAdapter(cfg *config.RuntimeConfig) *RegistryStoreAdapter {
	return &RegistryStoreAdapter{
		path: filepath.Join(cfg.DataDir, RegistryFileName),
	}
}

// Path returns the registry file location
func (s *RegistryStoreAdapter) Path() string {
	return s.path
}

// GetContracts returns a copy of the entries recorded for network.
// Unknown networks and a missing file yield an empty map.
func (s *RegistryStoreAdapter) GetContracts(_ context.Context, network string) (map[string]string, error) {
	reg, err := s.load()
	if err != nil {
		return nil, err
	}

	contracts := make(map[string]string, len(reg[network]))
	for name, address := range reg[network] {
		contracts[name] = address
	}
	return contracts, nil
}

// SaveContract upserts name -> address on network and persists the registry
func (s *RegistryStoreAdapter) SaveContract(_ context.Context, network, name, address string) error {
	if strings.TrimSpace(network) == "" {
		return fmt.Errorf("%w: network name is empty", domain.ErrInvalidName)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: contract name is empty", domain.ErrInvalidName)
	}
	normalized, err := domain.NormalizeAddress(address)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", name, address, err)
	}

	reg, err := s.load()
	if err != nil {
		return err
	}

	if reg[network] == nil {
		reg[network] = make(map[string]string)
	}
	reg[network][name] = normalized

	return s.save(reg)
}

// ListNetworks returns the networks that have at least one entry, sorted
func (s *RegistryStoreAdapter) ListNetworks(_ context.Context) ([]string, error) {
	reg, err := s.load()
	if err != nil {
		return nil, err
	}

	networks := lo.Filter(lo.Keys(reg), func(network string, _ int) bool {
		return len(reg[network]) > 0
	})
	sort.Strings(networks)
	return networks, nil
}

func (s *RegistryStoreAdapter) load() (registryFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return registryFile{}, nil
		}
		return nil, &domain.PersistenceError{Op: "read", Path: s.path, Err: err}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return registryFile{}, nil
	}

	var reg registryFile
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, &domain.PersistenceError{Op: "parse", Path: s.path, Err: err}
	}
	if reg == nil {
		reg = registryFile{}
	}
	return reg, nil
}

func (s *RegistryStoreAdapter) save(reg registryFile) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &domain.PersistenceError{Op: "write", Path: s.path, Err: err}
	}

	// encoding/json sorts map keys, so the file diffs cleanly
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return &domain.PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path, syncs it and
// renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	return syncDir(filepath.Dir(path))
}

// syncDir flushes a directory entry so a completed rename survives a crash
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}

// Ensure RegistryStoreAdapter implements ContractRegistry
var _ usecase.ContractRegistry = (*RegistryStoreAdapter)(nil)
