package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	sim "github.com/grover-sim/grover-sim/sim"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string                   `yaml:"version"`
	Sweeps  map[string]sim.SweepSpec `yaml:"sweeps"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults YAML: %w", err)
	}
	return cfg, nil
}

// GetPreset returns the named sweep preset from the defaults file.
func GetPreset(name, defaultsFilePath string) (*sim.SweepSpec, error) {
	cfg, err := loadDefaultsConfig(defaultsFilePath)
	if err != nil {
		return nil, err
	}
	spec, ok := cfg.Sweeps[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q; available: %v", name, presetNames(cfg))
	}
	return &spec, nil
}

func presetNames(cfg Config) []string {
	names := make([]string, 0, len(cfg.Sweeps))
	for name := range cfg.Sweeps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
