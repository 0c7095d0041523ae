package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the gameplay configuration.
// Search order: customPath -> ~/.busjam/configs/busjam.yaml -> ./configs/busjam.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (BusJamConfig, error) {
	cfg, src, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", src, err)
	}
	return cfg, nil
}

func load(customPath string) (BusJamConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, customPath, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("busjam.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "busjam.yaml")
	if cfg, ok := tryFile(local); ok {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultBusJamYAML, &cfg); err != nil {
		return DefaultConfig(), "defaults", nil
	}
	return cfg, "embedded defaults", nil
}

func tryFile(path string) (BusJamConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BusJamConfig{}, false
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BusJamConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".busjam", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BusJamConfig, preset DifficultyPreset) {
	if preset == DifficultyZen {
		cfg.Timer.Enabled = false
		return
	}
	cfg.Timer.Enabled = true
	cfg.Timer.Scale = TimerScaleForPreset(preset)
}
