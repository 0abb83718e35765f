package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/akyairhashvil/splitpace/internal/config"
	"github.com/akyairhashvil/splitpace/internal/console"
	"github.com/akyairhashvil/splitpace/internal/database"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/akyairhashvil/splitpace/internal/tui"
	"github.com/akyairhashvil/splitpace/internal/util"
	"golang.org/x/term"
)

// options selects how the app is driven.
type options struct {
	paths       util.Paths
	interactive bool
	manualClock bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := util.DefaultPaths()
	logs, err := util.SetupLogging(config.DebugEnvVar, paths.DebugLog())
	util.MustSucceed("setup logging", err)
	defer logs.Close()

	opts := options{
		paths:       paths,
		interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		manualClock: strings.TrimSpace(os.Getenv(config.ManualClockEnvVar)) != "",
	}
	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// run opens the settings store, builds the session and hands it to the
// terminal UI or, when stdin is not a terminal, to the console driver.
func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	if err := opts.paths.EnsureData(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(ctx, opts.paths.Database())
	if err != nil {
		return err
	}
	defer db.Close()

	cfg, err := db.LoadPacingConfig(ctx)
	if err != nil {
		return err
	}

	var ticker stopwatch.Ticker
	var manual *stopwatch.ManualTicker
	if opts.manualClock && !opts.interactive {
		manual = stopwatch.NewManualTicker()
		ticker = manual
	} else {
		ticker = stopwatch.NewIntervalTicker()
	}

	session, err := stopwatch.NewSession(ticker, cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	if opts.interactive {
		return tui.Run(ctx, session, db, opts.paths.Reports)
	}
	runner := &console.Runner{
		Session:   session,
		Store:     db,
		Manual:    manual,
		ReportDir: opts.paths.Reports,
	}
	return runner.Run(ctx, in, out)
}
