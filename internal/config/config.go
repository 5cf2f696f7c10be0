// Package config loads the CLI settings for the atlas prompt from a TOML file.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrMissingDataset indicates that one of the two required dataset paths is
// empty after loading.
var ErrMissingDataset = errors.New("config: regions and adjacency dataset paths are required")

// Config holds the settings of the atlas command.
type Config struct {
	// Regions is the path of the region dataset (name,group,cost per line).
	Regions string `toml:"regions"`

	// Adjacency is the path of the adjacency dataset (root,neighbors… per line).
	Adjacency string `toml:"adjacency"`

	// History is the prompt history file; empty disables persistence.
	History string `toml:"history"`

	// Verbose enables per-step traversal logging on route queries.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Regions:   "data/regions.csv",
		Adjacency: "data/adjacency.csv",
		History:   ".atlas_history",
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if cfg.Regions == "" || cfg.Adjacency == "" {
		return Config{}, ErrMissingDataset
	}

	return cfg, nil
}
