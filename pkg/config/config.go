// Package config loads the YAML file that selects which slice of the
// matrix to generate and where to write it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/distroforge/distroforge/pkg/distro"
	"github.com/distroforge/distroforge/pkg/matrix"
	"github.com/distroforge/distroforge/pkg/python"
)

// Filename is the default config file name searched in the working
// directory.
const Filename = "distroforge.yaml"

// Output modes.
const (
	OutputDir = "dir"
	OutputGit = "git"
)

// Config selects the matrix slice and output target. Empty selection
// lists mean "everything supported".
type Config struct {
	Distros    []string `yaml:"distros,omitempty"`
	Arches     []string `yaml:"arches,omitempty"`
	Versions   []string `yaml:"versions,omitempty"`
	Crunch     *bool    `yaml:"crunch,omitempty"`
	Maintainer string   `yaml:"maintainer,omitempty"`
	User       string   `yaml:"user,omitempty"`
	Output     Output   `yaml:"output,omitempty"`
}

// Output says where generated Dockerfiles go.
type Output struct {
	Mode string `yaml:"mode,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// FromYAML parses a config, rejecting unknown fields so typos fail loudly.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Output.Mode {
	case "", OutputDir, OutputGit:
	default:
		return fmt.Errorf("unknown output mode %q (want %q or %q)", c.Output.Mode, OutputDir, OutputGit)
	}
	return nil
}

// Generator builds the matrix generator described by the config,
// resolving every selection string against the catalogues.
func (c *Config) Generator() (*matrix.Generator, error) {
	g := matrix.New()
	for _, s := range c.Distros {
		d, err := distro.Parse(s)
		if err != nil {
			return nil, err
		}
		g.Distros = append(g.Distros, d)
	}
	for _, s := range c.Arches {
		a, err := distro.ParseArch(s)
		if err != nil {
			return nil, err
		}
		g.Arches = append(g.Arches, a)
	}
	for _, s := range c.Versions {
		r, err := python.ParseRelease(s)
		if err != nil {
			return nil, err
		}
		g.Releases = append(g.Releases, r)
	}
	if c.Crunch != nil {
		g.Crunch = *c.Crunch
	}
	if c.Maintainer != "" {
		g.Maintainer = c.Maintainer
	}
	if c.User != "" {
		g.User = c.User
	}
	return g, nil
}
