package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/phoswap/phodeploy/internal/config"
	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/phoswap/phodeploy/internal/usecase"
)

// ArtifactLoaderAdapter finds compiled contract artifacts under the
// configured artifact directories. Both Hardhat ("bytecode": "0x...") and
// Foundry ("bytecode": {"object": "0x..."}) layouts are accepted.
type ArtifactLoaderAdapter struct {
	dirs  []string
	cache map[string]*domain.Artifact
}

// NewArtifactLoaderAdapter creates a new ArtifactLoaderAdapter
func NewArtifactLoaderAdapter(cfg *config.RuntimeConfig) *ArtifactLoaderAdapter {
	return &ArtifactLoaderAdapter{
		dirs:  cfg.ArtifactsDirs,
		cache: make(map[string]*domain.Artifact),
	}
}

type artifactJSON struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

// LoadArtifact returns the first artifact named contractName in directory order
func (l *ArtifactLoaderAdapter) LoadArtifact(ctx context.Context, contractName string) (*domain.Artifact, error) {
	if artifact, ok := l.cache[contractName]; ok {
		return artifact, nil
	}

	for _, dir := range l.dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := findArtifact(dir, contractName)
		if err != nil {
			return nil, err
		}
		if path == "" {
			continue
		}

		artifact, err := parseArtifact(path)
		if err != nil {
			return nil, err
		}
		if artifact.ContractName == "" {
			artifact.ContractName = contractName
		}
		l.cache[contractName] = artifact
		return artifact, nil
	}

	return nil, fmt.Errorf("artifact %s not found in %s: %w",
		contractName, strings.Join(l.dirs, ", "), domain.ErrNotFound)
}

// findArtifact walks dir for <contractName>.json, skipping debug and build-info files
func findArtifact(dir, contractName string) (string, error) {
	want := contractName + ".json"
	var found string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == want {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan artifacts in %s: %w", dir, err)
	}

	return found, nil
}

func parseArtifact(path string) (*domain.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	var raw artifactJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	parsedABI, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI in %s: %w", path, err)
	}

	code, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}

	return &domain.Artifact{
		ContractName: raw.ContractName,
		SourceName:   raw.SourceName,
		ABI:          parsedABI,
		Bytecode:     code,
		Path:         path,
	}, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	var hex string
	if err := json.Unmarshal(raw, &hex); err != nil {
		var obj struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("unrecognised bytecode field")
		}
		hex = obj.Object
	}

	if hex == "" || hex == "0x" {
		return nil, fmt.Errorf("empty bytecode (abstract contract or interface?)")
	}
	if strings.Contains(hex, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library references")
	}
	if !strings.HasPrefix(hex, "0x") {
		hex = "0x" + hex
	}

	return hexutil.Decode(hex)
}

// Ensure ArtifactLoaderAdapter implements ArtifactLoader
var _ usecase.ArtifactLoader = (*ArtifactLoaderAdapter)(nil)
