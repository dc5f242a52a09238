package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by Resolve.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const (
	appDir     = ".pong"
	configName = "pong.yaml"
)

// LoadPong loads and validates the configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	cfg, _, err := Resolve(customPath)
	return cfg, err
}

// Resolve loads the configuration like LoadPong and also reports where it
// came from: a file path, SourceEmbedded or SourceBuiltin.
// Keys missing from a file keep their default values.
func Resolve(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory
	candidates := []string{filepath.Join("configs", configName)}
	if userCfgPath := userConfigPath(configName); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return validated(cfg, path)
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return validated(cfg, SourceEmbedded)
}

func parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validated(cfg PongConfig, source string) (PongConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// DataDir returns the per-user directory for configs, logs, the session
// journal and the SSH host key. It falls back to ./.pong without a home.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDir
	}
	return filepath.Join(home, appDir)
}

// DataPath returns a file path inside DataDir.
func DataPath(name string) string {
	return filepath.Join(DataDir(), name)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, appDir, "configs", filename)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
