package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the optional search prunes. The defaults match the
// behavior tuned for catalogs where a full-priority assignment exists;
// disabling a prune trades search time for stronger guarantees.
type Config struct {
	// DisablePriorityCutoff turns off the prune that abandons any branch
	// which passed the priority region without obtaining every priority
	// tripod. The cutoff assumes some assignment obtains all priority
	// tripods; when none does, it can suppress the true optimum or report
	// nothing at all. Disable it to restore the exhaustive search.
	DisablePriorityCutoff bool `yaml:"disablePriorityCutoff"`

	// DisableRedundancySkip turns off the prune that refuses to dedicate an
	// item to a tripod already obtained as a side effect of earlier picks.
	// The skip never changes the final optimum, only the search time.
	DisableRedundancySkip bool `yaml:"disableRedundancySkip"`

	// PriorityTripods overrides the catalog's priority count when set to
	// zero or above. Negative means "use the catalog's value".
	PriorityTripods int `yaml:"priorityTripods"`
}

// DefaultConfig returns the configuration used when no config file is given.
func DefaultConfig() Config {
	return Config{PriorityTripods: -1}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
