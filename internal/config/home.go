package config

import (
	"os"
	"path/filepath"
)

// ConfigEnvVar overrides the config file location when set.
const ConfigEnvVar = "VAULTSCAN_CONFIG"

// ConfigPath returns the config file used for a vault.
// Priority order:
//  1. VAULTSCAN_CONFIG environment variable (if set)
//  2. <root>/.vaultscan/config.yaml
func ConfigPath(root string) string {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}
	return filepath.Join(root, ".vaultscan", "config.yaml")
}

// LoadConfigFromDir loads the configuration that applies to the vault at root.
// If the file doesn't exist, the defaults are returned without error.
func LoadConfigFromDir(root string) (*Config, error) {
	cfg, err := LoadConfig(ConfigPath(root))
	if err != nil {
		return nil, err
	}
	cfg.ResolvePaths(root)
	return cfg, nil
}
