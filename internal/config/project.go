package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// loadProjectConfig loads .env files and parses phodeploy.toml.
// A missing phodeploy.toml yields DefaultProjectConfig.
func loadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	cfg := DefaultProjectConfig()

	projectPath := filepath.Join(projectRoot, ProjectFile)
	if _, err := os.Stat(projectPath); os.IsNotExist(err) {
		return cfg, nil
	}

	var raw ProjectConfig
	if _, err := toml.DecodeFile(projectPath, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
	}

	if raw.DataDir != "" {
		cfg.DataDir = raw.DataDir
	}
	if raw.ArtifactsDir != "" {
		cfg.ArtifactsDir = raw.ArtifactsDir
	}
	if raw.ProxyArtifactsDir != "" {
		cfg.ProxyArtifactsDir = raw.ProxyArtifactsDir
	}
	if raw.Farm.PhoPerBlock != "" {
		cfg.Farm.PhoPerBlock = raw.Farm.PhoPerBlock
	}
	if raw.Farm.StartBlock != "" {
		cfg.Farm.StartBlock = raw.Farm.StartBlock
	}

	for name, network := range raw.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		network.PrivateKey = os.ExpandEnv(network.PrivateKey)
		network.ProxyAdmin = os.ExpandEnv(network.ProxyAdmin)
		cfg.Networks[name] = network
	}

	return cfg, nil
}

// resolvePath makes p absolute relative to projectRoot
func resolvePath(projectRoot, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectRoot, p)
}
