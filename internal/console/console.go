// Package console drives a Session from line-oriented text input. It is
// the non-interactive counterpart of the terminal UI.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akyairhashvil/splitpace/internal/report"
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/akyairhashvil/splitpace/internal/util"
)

// Store persists the pacing configuration after it changes.
type Store interface {
	SavePacingConfig(ctx context.Context, cfg stopwatch.PacingConfig) error
}

// Runner reads commands and writes one state line per command.
type Runner struct {
	Session *stopwatch.Session
	// Store is optional.
	Store Store
	// Manual is set when the session runs on a ManualTicker; it enables tick.
	Manual    *stopwatch.ManualTicker
	ReportDir string
	Now       func() time.Time
}

// Run processes in until EOF, quit, or ctx is done. Recoverable command
// errors are printed and processing continues. ErrInvalidBoundary stops the
// run and is returned.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		a, ok, err := parseLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if !ok {
			continue
		}
		if a.verb == verbQuit {
			return nil
		}
		if err := r.apply(ctx, a, out); err != nil {
			if errors.Is(err, stopwatch.ErrInvalidBoundary) {
				return err
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (r *Runner) apply(ctx context.Context, a action, out io.Writer) error {
	switch a.verb {
	case verbDispatch:
		before := r.Session.State().Config
		st, err := r.Session.Dispatch(a.command)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, Render(st))
		if st.Config != before && r.Store != nil {
			if err := r.Store.SavePacingConfig(ctx, st.Config); err != nil {
				util.LogError("save pacing config", err)
				fmt.Fprintf(out, "warning: settings not saved: %v\n", err)
			}
		}
	case verbTick:
		if r.Manual == nil {
			return errors.New("tick needs the manual clock; use wait")
		}
		r.Manual.Fire(a.count)
		fmt.Fprintln(out, Render(r.Session.State()))
	case verbWait:
		if r.Manual != nil {
			r.Manual.FireFor(a.wait)
		} else {
			timer := time.NewTimer(a.wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		fmt.Fprintln(out, Render(r.Session.State()))
	case verbState:
		fmt.Fprintln(out, Render(r.Session.State()))
	case verbExport:
		path, err := r.export(a.path)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(out, "exported %s\n", path)
	case verbHelp:
		fmt.Fprintln(out, helpText)
	}
	return nil
}

func (r *Runner) export(path string) (string, error) {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}
	if path == "" {
		dir := r.ReportDir
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		path = report.DefaultPath(dir, now)
	}
	if err := report.WriteSplits(path, r.Session.State(), now); err != nil {
		return "", err
	}
	return path, nil
}

// Render formats a snapshot as a single line.
func Render(st stopwatch.SessionState) string {
	laps := make([]string, len(st.Laps))
	for i, lap := range st.Laps {
		laps[i] = stopwatch.FormatMillis(lap)
	}
	pace := st.Pacing.String()
	if pace == "" {
		pace = "-"
	}
	return fmt.Sprintf("%s %s | laps [%s] | pace %s | target %ss ±%d%%",
		st.State,
		stopwatch.FormatMillis(st.DisplayMs),
		strings.Join(laps, " "),
		pace,
		stopwatch.FormatMillis(st.TargetMs),
		st.Config.TolerancePercent,
	)
}
