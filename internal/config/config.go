// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the toyjson command-line tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/creachadair/toyjson"
	"github.com/mitchellh/go-homedir"
	"github.com/op/go-logging"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the location of the configuration file used when none is
// specified. A missing file at this location is not an error.
const DefaultPath = "~/.toyjson.yaml"

// Config represents the complete configuration for the tool.
type Config struct {
	Parse    ParseConfig  `yaml:"parse"`
	Format   FormatConfig `yaml:"format"`
	JWCC     bool         `yaml:"jwcc"`
	LogLevel string       `yaml:"log_level"`
}

// ParseConfig controls the grammar accepted by the parser.
type ParseConfig struct {
	AllowExponent bool `yaml:"allow_exponent"`
	AllowEscapes  bool `yaml:"allow_escapes"`
	MaxDepth      int  `yaml:"max_depth"`
}

// FormatConfig controls the rendering of output.
type FormatConfig struct {
	Indent string `yaml:"indent"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			MaxDepth: toyjson.DefaultMaxDepth,
		},
		Format: FormatConfig{
			Indent: "\t",
		},
		LogLevel: "warning",
	}
}

// Load reads configuration from the YAML file at path. A leading "~" in path
// is expanded to the home directory. Settings absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	exp, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path: %w", err)
	}
	data, err := os.ReadFile(exp)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", exp, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %q: %w", exp, err)
	}
	return cfg, nil
}

// LoadOptional is as Load, but returns the default configuration if the file
// at path does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate reports an error if c contains invalid settings.
func (c *Config) Validate() error {
	if c.Parse.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", c.Parse.MaxDepth)
	}
	if strings.TrimLeft(c.Format.Indent, " \t") != "" {
		return fmt.Errorf("indent must contain only spaces and tabs, got %q", c.Format.Indent)
	}
	if _, err := logging.LogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// ParseOptions returns the parser settings described by c.
func (c *Config) ParseOptions() toyjson.ParseOptions {
	return toyjson.ParseOptions{
		AllowExponent: c.Parse.AllowExponent,
		AllowEscapes:  c.Parse.AllowEscapes,
		MaxDepth:      c.Parse.MaxDepth,
	}
}

// Formatter returns the formatter settings described by c.
func (c *Config) Formatter() toyjson.Formatter {
	return toyjson.Formatter{Indent: c.Format.Indent}
}
