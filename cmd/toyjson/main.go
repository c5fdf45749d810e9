// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program toyjson parses a JSON document and prints it indented, with one
// element or member per line.
//
// Usage:
//
//	toyjson [flags] <file>
//
// Settings are read from a YAML configuration file (default ~/.toyjson.yaml)
// if one exists; flags override the file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/toyjson/internal/config"
	"github.com/op/go-logging"
	"github.com/tailscale/hujson"
)

// Version is the version string reported by --version.
const Version = "0.1.0"

var log = logging.MustGetLogger("toyjson")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

// CLI defines the command-line interface.
type CLI struct {
	File     string           `arg:"" help:"Path of the JSON document to format."`
	Config   string           `help:"Path of a YAML configuration file." default:"${config_path}" placeholder:"PATH"`
	Exponent bool             `help:"Accept exponents in numbers."`
	Escapes  bool             `help:"Let a backslash escape the next character of a string."`
	JWCC     bool             `name:"jwcc" help:"Accept comments and trailing commas (JSON With Commas and Comments)."`
	Indent   string           `help:"Indentation unit (default: one tab)."`
	LogLevel string           `help:"Log level: critical, error, warning, notice, info, or debug." placeholder:"LEVEL"`
	Version  kong.VersionFlag `help:"Print version information and exit."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the program with the given arguments and returns its exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exited, status := false, 0
	parser, err := kong.New(&cli,
		kong.Name("toyjson"),
		kong.Description("Parse a JSON document and print it indented."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited, status = true, code }),
		kong.Vars{
			"config_path": config.DefaultPath,
			"version":     Version,
		},
	)
	if err != nil {
		fmt.Fprintf(stderr, "toyjson: %v\n", err)
		return 2
	}
	if _, err := parser.Parse(args); exited {
		return status
	} else if err != nil {
		parser.FatalIfErrorf(err)
		if exited && status != 0 {
			return status
		}
		return 2
	}

	cfg, err := loadConfig(&cli)
	if err != nil {
		fmt.Fprintf(stderr, "toyjson: %v\n", err)
		return 1
	}
	if err := setupLogging(stderr, cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "toyjson: %v\n", err)
		return 1
	}

	if err := formatFile(stdout, cli.File, cfg); err != nil {
		fmt.Fprintf(stderr, "toyjson: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the configuration file named by the flags and applies the
// flag overrides to it.
func loadConfig(cli *CLI) (*config.Config, error) {
	load := config.Load
	if cli.Config == config.DefaultPath {
		load = config.LoadOptional
	}
	cfg, err := load(cli.Config)
	if err != nil {
		return nil, err
	}

	cfg.Parse.AllowExponent = cfg.Parse.AllowExponent || cli.Exponent
	cfg.Parse.AllowEscapes = cfg.Parse.AllowEscapes || cli.Escapes
	cfg.JWCC = cfg.JWCC || cli.JWCC
	if cli.Indent != "" {
		cfg.Format.Indent = cli.Indent
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func setupLogging(w io.Writer, level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat),
	)
	backend.SetLevel(lvl, "")
	logging.SetBackend(backend)
	return nil
}

// formatFile reads and parses the named file, and writes its formatted
// rendering to w followed by a newline.
func formatFile(w io.Writer, path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	log.Debugf("Read %d bytes from %q", len(data), path)

	if cfg.JWCC {
		// Standardize blanks out comments and trailing commas without moving
		// anything else, so error locations still match the input.
		data, err = hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Debug("Standardized JWCC input")
	}

	opts := cfg.ParseOptions()
	root, err := opts.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("Parsed %s with %d top-level elements", root.Kind(), root.Len())

	f := cfg.Formatter()
	if err := f.Format(w, root); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}
