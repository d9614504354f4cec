package config

import (
	"time"

	"github.com/phoswap/phodeploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot   string
	DataDir       string
	ArtifactsDirs []string

	// Network selection. Network is nil when NetworkName has no RPC endpoint;
	// registry commands still work in that case.
	NetworkName string
	Network     *domain.Network

	// Signing
	PrivateKey string

	// Execution settings
	Debug          bool
	NonInteractive bool
	AssumeYes      bool
	Timeout        time.Duration

	// Farm initializer parameters
	Farm domain.FarmParams

	// Resolved project file (defaults when phodeploy.toml is absent)
	Project *ProjectConfig
}

// ProjectConfig represents phodeploy.toml
type ProjectConfig struct {
	DataDir           string                   `toml:"data_dir"`
	ArtifactsDir      string                   `toml:"artifacts_dir"`
	ProxyArtifactsDir string                   `toml:"proxy_artifacts_dir"`
	Networks          map[string]NetworkConfig `toml:"networks"`
	Farm              FarmConfig               `toml:"farm"`
}

// NetworkConfig is a [networks.<name>] table
type NetworkConfig struct {
	RPCURL     string `toml:"rpc_url"`
	ChainID    uint64 `toml:"chain_id"`
	PrivateKey string `toml:"private_key,omitempty"`
	ProxyAdmin string `toml:"proxy_admin,omitempty"`
}

// FarmConfig is the [farm] table
type FarmConfig struct {
	PhoPerBlock string `toml:"pho_per_block"`
	StartBlock  string `toml:"start_block"`
}

const (
	ProjectFile              = "phodeploy.toml"
	DefaultDataDir           = "deployments"
	DefaultArtifactsDir      = "artifacts"
	DefaultProxyArtifactsDir = "node_modules/@openzeppelin/upgrades-core/artifacts"
	DefaultNetwork           = "localhost"
)

// DefaultProjectConfig returns the configuration used when no phodeploy.toml exists
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		DataDir:           DefaultDataDir,
		ArtifactsDir:      DefaultArtifactsDir,
		ProxyArtifactsDir: DefaultProxyArtifactsDir,
		Networks:          make(map[string]NetworkConfig),
		Farm: FarmConfig{
			PhoPerBlock: domain.DefaultPhoPerBlock,
			StartBlock:  domain.DefaultStartBlock,
		},
	}
}
