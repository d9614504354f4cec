package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phoswap/phodeploy/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	project, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	cfg := &RuntimeConfig{
		ProjectRoot: projectRoot,
		DataDir:     resolvePath(projectRoot, project.DataDir),
		ArtifactsDirs: []string{
			resolvePath(projectRoot, project.ArtifactsDir),
			resolvePath(projectRoot, project.ProxyArtifactsDir),
		},
		NetworkName:    v.GetString("network"),
		PrivateKey:     v.GetString("private_key"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		AssumeYes:      v.GetBool("yes"),
		Timeout:        v.GetDuration("timeout"),
		Farm: domain.FarmParams{
			PhoPerBlock: firstNonEmpty(v.GetString("pho_per_block"), project.Farm.PhoPerBlock),
			StartBlock:  firstNonEmpty(v.GetString("start_block"), project.Farm.StartBlock),
		},
		Project: project,
	}

	// Resolve network; an unconfigured network only matters for on-chain commands
	network, nc, err := ResolveNetwork(project, cfg.NetworkName)
	switch {
	case err == nil:
		cfg.Network = network
		if cfg.PrivateKey == "" {
			cfg.PrivateKey = nc.PrivateKey
		}
	case errors.Is(err, domain.ErrNetworkNotConfigured):
	default:
		return nil, err
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find phodeploy.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("PHODEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("yes", false)
	v.SetDefault("project_root", projectRoot)

	if flags != nil {
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
