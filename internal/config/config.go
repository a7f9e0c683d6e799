package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/vaultscan/internal/logger"
	"github.com/harrison/vaultscan/internal/subtree"
)

// Config represents vaultscan configuration options
type Config struct {
	// Extension is the file extension to discover, without leading dot
	Extension string `yaml:"extension"`

	// IncludeSubdirs restricts discovery to these subdirectories (empty = all)
	IncludeSubdirs []string `yaml:"include_subdirs"`

	// IncludeRoot keeps files sitting directly in the vault root
	IncludeRoot bool `yaml:"include_root"`

	// ExcludeDirs names directories that are never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// SkipHidden skips dot-directories such as .obsidian
	SkipHidden bool `yaml:"skip_hidden"`

	// MaxDepth limits how deep files are found (0 = unlimited, 1 = root only)
	MaxDepth int `yaml:"max_depth"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables a per-run log file in this directory when set
	LogDir string `yaml:"log_dir"`

	// IndexFile is where `resolve` writes the index unless --output overrides it.
	// A relative path from the config file is taken relative to the vault root.
	IndexFile string `yaml:"index_file"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Extension:   "md",
		IncludeRoot: true,
		LogLevel:    "info",
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.Extension != "" {
		cfg.Extension = strings.TrimPrefix(fileCfg.Extension, ".")
	}
	if fileCfg.MaxDepth != 0 {
		cfg.MaxDepth = fileCfg.MaxDepth
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = normalizeLevel(fileCfg.LogLevel)
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.IndexFile != "" {
		cfg.IndexFile = fileCfg.IndexFile
	}

	// Presence detection so that an explicit false or [] in the file wins.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if _, exists := rawMap["include_subdirs"]; exists {
			cfg.IncludeSubdirs = fileCfg.IncludeSubdirs
		}
		if _, exists := rawMap["exclude_dirs"]; exists {
			cfg.ExcludeDirs = fileCfg.ExcludeDirs
		}
		if _, exists := rawMap["include_root"]; exists {
			cfg.IncludeRoot = fileCfg.IncludeRoot
		}
		if _, exists := rawMap["skip_hidden"]; exists {
			cfg.SkipHidden = fileCfg.SkipHidden
		}
	}

	return cfg, nil
}

// ResolvePaths makes a relative IndexFile relative to the vault root.
func (c *Config) ResolvePaths(root string) {
	if c.IndexFile != "" && !filepath.IsAbs(c.IndexFile) {
		c.IndexFile = filepath.Join(root, c.IndexFile)
	}
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(extension *string, includeSubdirs []string, includeRoot *bool, maxDepth *int, logLevel *string, indexFile *string) {
	if extension != nil {
		c.Extension = strings.TrimPrefix(*extension, ".")
	}
	if len(includeSubdirs) > 0 {
		c.IncludeSubdirs = includeSubdirs
	}
	if includeRoot != nil {
		c.IncludeRoot = *includeRoot
	}
	if maxDepth != nil {
		c.MaxDepth = *maxDepth
	}
	if logLevel != nil {
		c.LogLevel = normalizeLevel(*logLevel)
	}
	if indexFile != nil {
		c.IndexFile = *indexFile
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Extension == "" {
		return fmt.Errorf("extension cannot be empty")
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain a path separator", c.Extension)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", c.MaxDepth)
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}

	if _, err := subtree.NewAllowedDirSet(c.IncludeSubdirs); err != nil {
		return fmt.Errorf("invalid include_subdirs: %w", err)
	}

	return nil
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
