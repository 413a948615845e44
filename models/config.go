package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is looked up in the working directory when --config is
// not given.
const DefaultConfigName = "mapidx.yaml"

// Config holds tool-environment settings, the standalone equivalent of the
// host application's geoprocessing options.
type Config struct {
	// AutoAddOutputs mirrors the host's "add output datasets to an open map"
	// option. When set, generate always adds the result layer and the
	// --add-to-map flag is overridden.
	AutoAddOutputs bool `yaml:"autoAddOutputs"`
}

// LoadConfig reads the tool config from path. A missing file is not an
// error; it yields the zero config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
