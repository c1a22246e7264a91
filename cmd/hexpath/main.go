// Command hexpath runs YAML grid scenarios and prints the answers.
//
//	hexpath [-log-level L] [-tiles] scenario.yaml...
//
// Scenarios run concurrently, each on its own grid. The exit status is 1
// when a scenario fails to load or run and 2 when any query misses its
// expected value.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/hextiles/scenario"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("interrupted", "signal", sig)
		cancel()
	}()

	code, err := run(ctx, os.Args[1:], os.Stdout)
	if err != nil {
		slog.Error("fatal", "err", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string, out io.Writer) (int, error) {
	fs := flag.NewFlagSet("hexpath", flag.ContinueOnError)
	logLevel := fs.String("log-level", os.Getenv("HEXPATH_LOG_LEVEL"), "debug, info, warn or error")
	showTiles := fs.Bool("tiles", false, "print the tile ids of every result")
	if err := fs.Parse(args); err != nil {
		return 1, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 1, errors.New("no scenario files given")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	})))

	scenarios := make([]scenario.Scenario, 0, fs.NArg())
	for _, path := range fs.Args() {
		s, err := scenario.Load(path)
		if err != nil {
			return 1, fmt.Errorf("loading: %w", err)
		}
		scenarios = append(scenarios, s)
	}

	reports, err := scenario.RunAll(ctx, scenarios, slog.Default())
	if err != nil {
		return 1, err
	}

	code := 0
	for _, rep := range reports {
		printReport(out, rep, *showTiles)
		if rep.Failed() {
			code = 2
		}
	}
	return code, nil
}

func printReport(w io.Writer, rep scenario.Report, showTiles bool) {
	fmt.Fprintf(w, "%s (%d tiles)\n", rep.Scenario, rep.Tiles)
	for _, res := range rep.Results {
		status := ""
		if res.Expected != nil {
			status = " ok"
			if res.Mismatch {
				status = fmt.Sprintf(" MISMATCH want %d", *res.Expected)
			}
		}
		fmt.Fprintf(w, "  %-14s %-24s cost=%d%s\n", res.Kind, res.Query, res.Cost, status)
		if showTiles {
			fmt.Fprintf(w, "    %v\n", res.Tiles)
		}
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Warn if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
