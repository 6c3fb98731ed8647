package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunnerFile is the configuration file name.
const RunnerFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.fracture/configs/runner.yaml ->
// ./configs/runner.yaml -> embedded default -> hardcoded default.
// Keys missing from a file keep their built-in values.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseRunner(defaultRunnerYAML); err == nil {
		return cfg, nil
	}
	return DefaultRunnerConfig(), nil
}

func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	preset, err := ParsePreset(string(cfg.Difficulty.Preset))
	if err != nil {
		return RunnerConfig{}, err
	}
	cfg.Difficulty.Preset = preset
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(RunnerFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", RunnerFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fracture", "configs", filename)
}
