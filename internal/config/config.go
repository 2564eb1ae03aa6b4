// Package config loads the CLI's optional YAML configuration file,
// following the teacher's JSON-struct configuration idiom but in the
// wider example pack's more common YAML format.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of hmfc.yaml.
type Config struct {
	// Examples restricts a bare `hmfc run` (no names, no --all) to
	// this list; empty means "run nothing by default".
	Examples []string `yaml:"examples"`
	// Format is the output format named in the file ("text" or
	// "json"). The CLI does not read it: results are always printed
	// as text, and only the --json flag switches the log format.
	Format string `yaml:"format"`
	// Color is the color preference named in the file; nil when the
	// key is absent. The CLI does not read it: color is always
	// auto-detected from the output file descriptor.
	Color *bool `yaml:"color"`
}

// Default returns the configuration used when no hmfc.yaml is present.
func Default() *Config {
	return &Config{
		Format: "text",
	}
}

// Load reads and parses path. A missing file is not an error; Load
// returns Default() instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
