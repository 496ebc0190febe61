// Package config holds the tunables for a single front-end run: tab width,
// the maximum accepted source length, and whether warnings escalate to
// errors. A zero Config is not ready to use; call Default or Load.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cero-lang/cero/source"
)

// Config mirrors the role of the original driver's Config struct, minus the
// command-line-only fields (command, file paths) that belong to cmd/cero,
// not the library.
type Config struct {
	TabWidth         int  `yaml:"tabWidth"`
	MaxSourceLength  int  `yaml:"maxSourceLength"`
	WarningsAsErrors bool `yaml:"warningsAsErrors"`
}

// Default returns the Config a run uses when nothing overrides it.
func Default() Config {
	return Config{
		TabWidth:        source.DefaultTabWidth,
		MaxSourceLength: source.MaxLength,
	}
}

// Load decodes YAML from r over a copy of Default and validates it. Fields
// absent from the document keep their default value.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TabWidth < 1 {
		return fmt.Errorf("config: tabWidth must be >= 1, got %d", c.TabWidth)
	}
	if c.MaxSourceLength < 1 || c.MaxSourceLength > source.MaxLength {
		return fmt.Errorf("config: maxSourceLength must be in [1, %d], got %d", source.MaxLength, c.MaxSourceLength)
	}
	return nil
}
