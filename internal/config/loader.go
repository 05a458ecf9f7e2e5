package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "musclebrain.yaml"

// Environment overrides applied after the file is loaded.
const (
	EnvDBPath   = "MUSCLEBRAIN_DB"
	EnvRedisURL = "REDIS_URL"
)

// Load reads the configuration.
// Search order: customPath -> ~/.musclebrain/config.yaml -> ./configs/musclebrain.yaml -> embedded default
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (Config, error) {
	cfg := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyEnv(cfg), nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return applyEnv(candidate), nil
		}
	}

	return applyEnv(cfg), nil
}

// embedded parses the embedded default YAML over the hardcoded defaults.
func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.App.DBPath = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		cfg.App.RedisURL = v
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".musclebrain", filename)
}

// DataDir returns ~/.musclebrain, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".musclebrain")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: cannot create %s: %w", dir, err)
	}
	return dir, nil
}
