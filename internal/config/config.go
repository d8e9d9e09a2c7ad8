// Package config loads the optional gridview.yaml server configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings read from a config file. Flags override
// anything set here.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr" json:"addr"`

	// Data is the path of the dataset CSV.
	Data string `yaml:"data" json:"data"`

	// Palette optionally overrides the default chart colors (hex strings).
	Palette []string `yaml:"palette" json:"palette"`
}

// Default returns the built-in configuration: all interfaces, port 8080.
func Default() Config {
	return Config{Addr: ":8080"}
}

// Load reads a configuration file (YAML or JSON). A missing file is not an
// error; it yields the defaults so running without any config just works.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	return cfg, nil
}
