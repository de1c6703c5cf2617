package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.eerium/config.yaml -> ./configs/eerium.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// other locations are skipped when missing or broken.
func Load(customPath string) (*Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "eerium.yaml")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			log.Warn("ignoring config", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		log.Warn("embedded config unusable, using built-in defaults", "error", err)
		return Default(), nil
	}
	log.Debug("using embedded default config")
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result, so a file
// only needs the keys it changes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info("loaded config", "path", path)
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eerium", filename)
}
