// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/katalvlaran/valvesched/network"
	"github.com/katalvlaran/valvesched/schedule"
	"github.com/rs/zerolog"
)

// report is the -json output document.
type report struct {
	Valves     int           `json:"valves"`
	FlowValves int           `json:"flow_valves"`
	Start      string        `json:"start"`
	Budget     int           `json:"budget"`
	Single     *engineReport `json:"single,omitempty"`
	Pair       *engineReport `json:"pair,omitempty"`
}

type engineReport struct {
	Yield       int64 `json:"yield"`
	StartMinute int   `json:"start_minute"`
	Minutes     int   `json:"minutes"`
	States      int   `json:"states"`
	ElapsedMS   int64 `json:"elapsed_ms"`
}

// run is the testable body of main.
func run(ctx context.Context, stdout, stderr io.Writer, args []string, getenv func(string) string) error {
	cfg, shouldExit, err := Parse(args, getenv, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)

	net, err := loadNetwork(cfg)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	logger.Info().
		Str("file", cfg.Path).
		Int("valves", net.Len()).
		Int("flow_valves", net.FlowCount()).
		Str("start", net.StartName()).
		Msg("network loaded")
	if lost := net.UnreachableFlow(); len(lost) > 0 {
		logger.Warn().Strs("valves", lost).Msg("flow valves unreachable from start")
	}

	rep := report{
		Valves:     net.Len(),
		FlowValves: net.FlowCount(),
		Start:      net.StartName(),
		Budget:     cfg.Budget,
	}
	if cfg.Mode == modeSingle || cfg.Mode == modeBoth {
		if rep.Single, err = solve(ctx, logger, "single", schedule.Single, net, cfg); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
	}
	if cfg.Mode == modePair || cfg.Mode == modeBoth {
		if rep.Pair, err = solve(ctx, logger, "pair", schedule.Pair, net, cfg); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
	}

	return writeReport(stdout, cfg.JSON, rep)
}

// loadNetwork reads cfg.Path in cfg.Format and applies the start override.
func loadNetwork(cfg *Config) (*network.Network, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open network: %w", err)
	}
	defer f.Close()

	if cfg.Format == formatText {
		start := cfg.Start
		if start == "" {
			start = network.DefaultStart
		}
		return network.Parse(f, start)
	}

	net, err := network.DecodeYAML(f)
	if err != nil {
		return nil, err
	}
	if cfg.Start == "" || cfg.Start == net.StartName() {
		return net, nil
	}

	return network.NewNetwork(net.Records(), cfg.Start)
}

type engineFn func(schedule.Graph, int, ...schedule.Option) (schedule.Result, error)

// solve runs one engine with per-minute debug logging.
func solve(ctx context.Context, logger zerolog.Logger, name string, fn engineFn, net *network.Network, cfg *Config) (*engineReport, error) {
	log := logger.With().Str("engine", name).Logger()
	began := time.Now()
	res, err := fn(net, cfg.Budget,
		schedule.WithContext(ctx),
		schedule.WithWorkers(cfg.Workers),
		schedule.WithSetupMinutes(cfg.Setup),
		schedule.WithOnMinute(func(s schedule.MinuteStats) {
			log.Debug().
				Int("minute", s.Minute).
				Int("states", s.States).
				Dur("elapsed", s.Elapsed).
				Msg("minute table done")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	elapsed := time.Since(began)
	log.Info().
		Int64("yield", res.Yield).
		Int("start_minute", res.StartMinute).
		Int("minutes", res.Minutes).
		Dur("elapsed", elapsed).
		Msg("search finished")

	return &engineReport{
		Yield:       res.Yield,
		StartMinute: res.StartMinute,
		Minutes:     res.Minutes,
		States:      res.States,
		ElapsedMS:   elapsed.Milliseconds(),
	}, nil
}

func writeReport(w io.Writer, asJSON bool, rep report) error {
	if asJSON {
		data, err := sonic.Marshal(rep)
		if err != nil {
			return &ExitError{Code: 1, Message: fmt.Sprintf("encode report: %v", err)}
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	if rep.Single != nil {
		fmt.Fprintf(w, "single: %d\n", rep.Single.Yield)
	}
	if rep.Pair != nil {
		fmt.Fprintf(w, "pair: %d\n", rep.Pair.Yield)
	}

	return nil
}
