// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/valvesched/network"
	"github.com/katalvlaran/valvesched/schedule"
	"github.com/rs/zerolog"
)

// Environment variables that provide flag defaults.
const (
	envStart     = "VALVESCHED_START"
	envBudget    = "VALVESCHED_BUDGET"
	envSetup     = "VALVESCHED_SETUP"
	envWorkers   = "VALVESCHED_WORKERS"
	envMode      = "VALVESCHED_MODE"
	envFormat    = "VALVESCHED_FORMAT"
	envLogLevel  = "VALVESCHED_LOG_LEVEL"
	envLogFormat = "VALVESCHED_LOG_FORMAT"
)

// Run modes.
const (
	modeSingle = "single"
	modePair   = "pair"
	modeBoth   = "both"
)

// Input formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

const defaultBudget = 30

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the resolved command line.
type Config struct {
	Path      string
	Format    string
	Start     string
	Budget    int
	Setup     int
	Workers   int
	Mode      string
	JSON      bool
	LogLevel  zerolog.Level
	LogFormat string
}

// Parse resolves args over defaults taken from getenv. It returns the
// config, whether the program should exit cleanly (help or no input), or an
// ExitError with code 2 for usage errors.
func Parse(args []string, getenv func(string) string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("valvesched", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
valvesched - best valve-opening schedule for one or two agents.

Usage:
  valvesched [options] NETWORK_FILE

Arguments:
  NETWORK_FILE
    Valve records, one per line, or a YAML document (.yaml/.yml).

Options:
`)
		fs.PrintDefaults()
	}

	budgetDef, err := envInt(getenv, envBudget, defaultBudget)
	if err != nil {
		return nil, false, err
	}
	setupDef, err := envInt(getenv, envSetup, schedule.DefaultSetupMinutes)
	if err != nil {
		return nil, false, err
	}
	workersDef, err := envInt(getenv, envWorkers, schedule.DefaultWorkers)
	if err != nil {
		return nil, false, err
	}

	start := fs.String("start", envString(getenv, envStart, ""), "Name of the start valve. Empty uses the file's start, then "+network.DefaultStart+".")
	budget := fs.Int("budget", budgetDef, "Time budget in minutes.")
	setup := fs.Int("setup", setupDef, "Minutes the two-agent search spends before its clock starts.")
	workers := fs.Int("workers", workersDef, "Goroutines per minute table.")
	mode := fs.String("mode", envString(getenv, envMode, modeBoth), "Search to run: 'single', 'pair' or 'both'.")
	format := fs.String("format", envString(getenv, envFormat, ""), "Input format: 'text' or 'yaml'. Empty picks by file extension.")
	asJSON := fs.Bool("json", false, "Print results as JSON.")
	logLevel := fs.String("log-level", envString(getenv, envLogLevel, "info"), "Log level: 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", envString(getenv, envLogFormat, "console"), "Log format: 'console' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, true, nil
	}
	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "exactly one NETWORK_FILE is expected"}
	}

	cfg := &Config{
		Path:      fs.Arg(0),
		Start:     *start,
		Budget:    *budget,
		Setup:     *setup,
		Workers:   *workers,
		Mode:      strings.ToLower(*mode),
		Format:    strings.ToLower(*format),
		JSON:      *asJSON,
		LogFormat: strings.ToLower(*logFormat),
	}

	switch cfg.Mode {
	case modeSingle, modePair, modeBoth:
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid mode: must be 'single', 'pair' or 'both'"}
	}
	if cfg.Format == "" {
		cfg.Format = formatFor(cfg.Path)
	}
	if cfg.Format != formatText && cfg.Format != formatYAML {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text' or 'yaml'"}
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'console' or 'json'"}
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(*logLevel)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log-level %q", *logLevel)}
	}
	if cfg.Budget < 0 || cfg.Setup < 0 || cfg.Workers < 1 {
		return nil, false, &ExitError{Code: 2, Message: "budget and setup must be >= 0, workers >= 1"}
	}

	return cfg, false, nil
}

// formatFor picks the input format from the file extension.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatText
	}
}

func envString(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}

	return def
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s=%q: not an integer", key, v)}
	}

	return n, nil
}
