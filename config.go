package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/datawire/versio/pkg/scheme"
	"github.com/datawire/versio/pkg/version"
)

const configFilename = ".versio.yml"

// config is the optional per-project ".versio.yml" file in the working
// directory.  Command-line flags win over it.
type config struct {
	// Scheme restricts parsing to one named scheme; empty means try
	// every built-in scheme.
	Scheme string `yaml:"scheme,omitempty"`
	// File is the version file that "bump --file" rewrites.
	File string `yaml:"file,omitempty"`
}

func loadConfig() (config, error) {
	cfg := config{
		File: "VERSION.txt",
	}
	body, err := os.ReadFile(configFilename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(body, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", configFilename, err)
	}
	if cfg.File == "" {
		cfg.File = "VERSION.txt"
	}
	return cfg, nil
}

// parser returns the version parser for a --scheme flag value, falling
// back to the config file's scheme, then to every built-in scheme.
func (cfg config) parser(flagScheme string) (version.Parser, error) {
	name := flagScheme
	if name == "" {
		name = cfg.Scheme
	}
	if name == "" {
		return version.Parser{Registry: scheme.Builtin()}, nil
	}
	s, ok := scheme.Builtin().Lookup(name)
	if !ok {
		return version.Parser{}, fmt.Errorf("unknown scheme %q", name)
	}
	return version.Parser{Registry: scheme.NewRegistry(s)}, nil
}
