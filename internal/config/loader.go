package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a config was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadThrees loads Threes configuration.
// Search order: customPath -> ~/.threes/config.yaml -> ./configs/threes.yaml -> embedded default
func LoadThrees(customPath string) (ThreesConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", "threes.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultThreesYAML)
	if err != nil {
		return DefaultThreesConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// readFile reads and validates a config file.
func readFile(path string) (ThreesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ThreesConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults, so omitted keys keep their
// default values, and validates the result.
func parse(data []byte) (ThreesConfig, error) {
	cfg := DefaultThreesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg ThreesConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".threes", filename)
}
