package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/BurntSushi/toml"

	"detour.dev/detour/internal/git"
)

// RepoConfigFile is the per-repository config file name inside the git directory
const RepoConfigFile = "detour.toml"

// DefaultHistoryLimit is the number of commits shown by history
const DefaultHistoryLimit = 10

// Config holds the effective settings for one CLI invocation
type Config struct {
	FeaturePrefix     string   `toml:"feature_prefix"`
	Remote            string   `toml:"remote"`
	ProtectedBranches []string `toml:"protected_branches"`
	HistoryLimit      int      `toml:"history_limit"`
	GitBinary         string   `toml:"git_binary"`
	LogFile           string   `toml:"log_file"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		FeaturePrefix:     "feature/",
		Remote:            git.DefaultRemote,
		ProtectedBranches: []string{"main", "master"},
		HistoryLimit:      DefaultHistoryLimit,
		GitBinary:         git.DefaultBinary,
	}
}

// Load builds the effective config for the repository containing workingDir.
// workingDir may be outside any repository, in which case only the user
// layer applies.
func Load(workingDir string) (*Config, error) {
	cfg := Default()

	userPath := UserConfigPath()
	if userPath != "" {
		if err := cfg.mergeFile(userPath); err != nil {
			return nil, err
		}
	}

	if gitDir, err := git.GetCommonGitDir(workingDir); err == nil {
		if err := cfg.mergeFile(filepath.Join(gitDir, RepoConfigFile)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// UserConfigPath returns the path of the user-level config file.
// DETOUR_CONFIG wins, then XDG_CONFIG_HOME, then ~/.config.
func UserConfigPath() string {
	if customPath := os.Getenv("DETOUR_CONFIG"); customPath != "" {
		return customPath
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "detour", "config.toml")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "detour", "config.toml")
}

// LoadFileConfigFrom reads one config file.
// Returns nil if the file doesn't exist (not an error). A path running
// through a regular file counts as missing.
func LoadFileConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	return &cfg, nil
}

// mergeFile overlays the non-zero settings of configPath onto c
func (c *Config) mergeFile(configPath string) error {
	layer, err := LoadFileConfigFrom(configPath)
	if err != nil {
		return err
	}
	if layer == nil {
		return nil
	}
	c.merge(layer)
	return nil
}

func (c *Config) merge(layer *Config) {
	if layer.FeaturePrefix != "" {
		c.FeaturePrefix = layer.FeaturePrefix
	}
	if layer.Remote != "" {
		c.Remote = layer.Remote
	}
	if layer.ProtectedBranches != nil {
		c.ProtectedBranches = layer.ProtectedBranches
	}
	if layer.HistoryLimit > 0 {
		c.HistoryLimit = layer.HistoryLimit
	}
	if layer.GitBinary != "" {
		c.GitBinary = layer.GitBinary
	}
	if layer.LogFile != "" {
		c.LogFile = layer.LogFile
	}
}
