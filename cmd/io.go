// File I/O for the CLI: YAML config/override loading and JSON result
// export/import. The sim package itself never touches the filesystem.

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/seaport-sim/seaport-sim/sim"
)

// decodeStrictYAML decodes into out rejecting unknown keys, so a typo'd
// key cannot silently become a zero value.
func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// LoadConfigFile reads a full SimulationConfig from YAML.
func LoadConfigFile(path string) (*sim.SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg sim.SimulationConfig
	if err := decodeStrictYAML(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOverridesFile reads a bounded override set from YAML.
func LoadOverridesFile(path string) (*sim.Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides %s: %w", path, err)
	}
	var overrides sim.Overrides
	if err := decodeStrictYAML(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	return &overrides, nil
}

// WriteResultFile exports a SimulationResult as indented JSON.
func WriteResultFile(path string, result *sim.SimulationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result %s: %w", path, err)
	}
	return nil
}

// LoadResultFile reads back an exported SimulationResult.
func LoadResultFile(path string) (*sim.SimulationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result %s: %w", path, err)
	}
	var result sim.SimulationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse result %s: %w", path, err)
	}
	return &result, nil
}

// WriteComparisonFile exports a KPI comparison report as indented JSON.
func WriteComparisonFile(path string, comparison *sim.Comparison) error {
	data, err := json.MarshalIndent(comparison, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal comparison: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write comparison %s: %w", path, err)
	}
	return nil
}
