// Package config handles configuration loading for the codec tools.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/geocodec/pkg/geojson"
	"github.com/woozymasta/geocodec/pkg/hostgeom"
)

// Config represents the root configuration file structure.
type Config struct {
	Precision  Precision `yaml:"precision" json:"precision"`
	Indent     string    `yaml:"indent,omitempty" json:"indent,omitempty"`
	SRID       int       `yaml:"srid" json:"srid"`
	MaxDepth   int       `yaml:"max_depth,omitempty" json:"max_depth,omitempty"`
	PascalCase bool      `yaml:"pascal_case,omitempty" json:"pascal_case,omitempty"`
}

// Precision selects the host precision model.
type Precision struct {
	Type  string  `yaml:"type" json:"type"` // floating, floating_single or fixed
	Scale float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
}

// Default returns the configuration used when no file is given: SRID 0,
// floating precision.
func Default() *Config {
	return &Config{
		Precision: Precision{Type: "floating"},
		MaxDepth:  geojson.DefaultMaxDepth,
	}
}

// Load reads and parses the YAML configuration file from the specified path.
// Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config")
	}
	return Parse(data)
}

// Parse decodes YAML configuration and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot be turned into a factory or codec.
func (c *Config) Validate() error {
	if _, err := c.PrecisionModel(); err != nil {
		return errors.Wrap(err, "invalid precision")
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return errors.Errorf("indent may only contain spaces and tabs, got %q", c.Indent)
	}
	if c.SRID < 0 {
		return errors.Errorf("srid must not be negative, got %d", c.SRID)
	}
	return nil
}

// PrecisionModel resolves the configured precision.
func (c *Config) PrecisionModel() (hostgeom.PrecisionModel, error) {
	return hostgeom.ParsePrecisionModel(c.Precision.Type, c.Precision.Scale)
}

// Factory builds the host geometry factory described by the configuration.
func (c *Config) Factory() (*hostgeom.GeometryFactory, error) {
	pm, err := c.PrecisionModel()
	if err != nil {
		return nil, errors.Wrap(err, "invalid precision")
	}
	return hostgeom.NewGeometryFactory(pm, c.SRID), nil
}

// CodecOptions returns the codec settings; the logger is left to the caller.
func (c *Config) CodecOptions() []geojson.Option {
	opts := []geojson.Option{geojson.WithMaxDepth(c.MaxDepth)}
	if c.PascalCase {
		opts = append(opts, geojson.WithPascalCaseTypes())
	}
	if c.Indent != "" {
		opts = append(opts, geojson.WithIndent(c.Indent))
	}
	return opts
}

// Adapter combines Factory and CodecOptions with any extra options.
func (c *Config) Adapter(extra ...geojson.Option) (*hostgeom.Adapter, error) {
	f, err := c.Factory()
	if err != nil {
		return nil, err
	}
	return hostgeom.New(f, append(c.CodecOptions(), extra...)...), nil
}
