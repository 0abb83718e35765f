package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/splitpace/internal/stopwatch"
	"github.com/akyairhashvil/splitpace/internal/testutil"
)

type fakeStore struct {
	saved []stopwatch.PacingConfig
	err   error
}

func (f *fakeStore) SavePacingConfig(ctx context.Context, cfg stopwatch.PacingConfig) error {
	f.saved = append(f.saved, cfg)
	return f.err
}

func newRunner(t *testing.T) (*Runner, *fakeStore) {
	t.Helper()
	ticker := stopwatch.NewManualTicker()
	s, err := stopwatch.NewSession(ticker, stopwatch.DefaultPacingConfig())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	t.Cleanup(s.Close)
	store := &fakeStore{}
	return &Runner{Session: s, Store: store, Manual: ticker, ReportDir: t.TempDir()}, store
}

func runScript(t *testing.T, r *Runner, script string) []string {
	t.Helper()
	var out bytes.Buffer
	if err := r.Run(context.Background(), strings.NewReader(script), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRunStopClosesLap(t *testing.T) {
	r, _ := newRunner(t)
	lines := runScript(t, r, "start\ntick 100\nlap\ntick 70\nstop\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "stopped 1.70") {
		t.Fatalf("expected stopped at 1.70, got %q", last)
	}
	if !strings.Contains(last, "laps [1.00 0.70]") {
		t.Fatalf("expected both laps, got %q", last)
	}
	st := r.Session.State()
	if len(st.Laps) != 2 || st.Laps[1] != 700 {
		t.Fatalf("unexpected laps %v", st.Laps)
	}
}

func TestRunShowsOpenLapWhileRunning(t *testing.T) {
	r, _ := newRunner(t)
	lines := runScript(t, r, "start\ntick 250\nlap\ntick 30\nstate\n")
	if got := lines[len(lines)-1]; !strings.HasPrefix(got, "running 0.30") {
		t.Fatalf("expected open lap time, got %q", got)
	}
}

func TestRunConfigLockAndPersist(t *testing.T) {
	r, store := newRunner(t)
	lines := runScript(t, r, "start\nseconds 30\nstop\nseconds 30\ntolerance 12\n")
	if !strings.HasPrefix(lines[1], "error:") || !strings.Contains(lines[1], "locked") {
		t.Fatalf("expected locked error, got %q", lines[1])
	}
	if !strings.Contains(lines[3], "target 30.50s") {
		t.Fatalf("expected new target after stop, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "error:") {
		t.Fatalf("expected out of range error, got %q", lines[4])
	}
	if len(store.saved) != 1 || store.saved[0].TargetSeconds != 30 {
		t.Fatalf("expected one save with 30s, got %+v", store.saved)
	}
}

func TestRunStoreErrorIsNotFatal(t *testing.T) {
	r, store := newRunner(t)
	store.err = errors.New("disk full")
	lines := runScript(t, r, "tenths 2\nstate\n")
	if len(lines) != 3 {
		t.Fatalf("expected state, warning and state lines, got %v", lines)
	}
	if !strings.Contains(lines[0], "target 16.20s") {
		t.Fatalf("config change should still apply, got %q", lines[0])
	}
	if lines[1] != "warning: settings not saved: disk full" {
		t.Fatalf("expected save warning, got %q", lines[1])
	}
	if strings.HasPrefix(lines[2], "error:") {
		t.Fatalf("store errors must not stop the run, got %q", lines[2])
	}
}

func TestRunSyntaxErrors(t *testing.T) {
	r, _ := newRunner(t)
	lines := runScript(t, r, "# comment\n\nfly\nseconds x\nlap now\ntick -1\nwait soon\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 error lines, got %d: %v", len(lines), lines)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "error:") {
			t.Fatalf("expected error line, got %q", l)
		}
	}
}

func TestRunLapWhileIdle(t *testing.T) {
	r, _ := newRunner(t)
	lines := runScript(t, r, "lap\n")
	if !strings.Contains(lines[0], "not running") {
		t.Fatalf("expected not running error, got %q", lines[0])
	}
}

func TestRunQuitStopsProcessing(t *testing.T) {
	r, _ := newRunner(t)
	lines := runScript(t, r, "start\nquit\nstop\n")
	if len(lines) != 1 {
		t.Fatalf("expected processing to stop at quit, got %v", lines)
	}
	if r.Session.State().State != stopwatch.StateRunning {
		t.Fatalf("stop after quit must not run")
	}
}

func TestRunWaitUsesManualClock(t *testing.T) {
	r, _ := newRunner(t)
	lines := runScript(t, r, "start\nwait 1.5s\n")
	if got := lines[len(lines)-1]; !strings.HasPrefix(got, "running 1.50") {
		t.Fatalf("expected 1.50 after wait, got %q", got)
	}
}

func TestRunTickNeedsManualClock(t *testing.T) {
	r, _ := newRunner(t)
	r.Manual = nil
	lines := runScript(t, r, "tick 3\n")
	if !strings.HasPrefix(lines[0], "error:") {
		t.Fatalf("expected error without manual clock, got %q", lines[0])
	}
}

func TestRunExport(t *testing.T) {
	r, _ := newRunner(t)
	r.Now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	lines := runScript(t, r, "start\ntick 10\nstop\nexport\n")
	last := lines[len(lines)-1]
	want := filepath.Join(r.ReportDir, "splits_2024-01-02_030405.pdf")
	if last != "exported "+want {
		t.Fatalf("unexpected export line %q", last)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected report file: %v", err)
	}
}

func TestRunContextCanceled(t *testing.T) {
	r, _ := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := r.Run(ctx, strings.NewReader("start\n"), &out); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		st   stopwatch.SessionState
		want string
	}{
		{"idle", testutil.NewState().Build(), "idle 0.00 | laps [] | pace - | target 16.50s ±9%"},
		{"stopped", testutil.NewState().Stopped().WithLaps(1000, 700).Build(), "stopped 1.70 | laps [1.00 0.70] | pace over | target 16.50s ±9%"},
		{"running", testutil.NewState().Running(450).WithLaps(16000).Build(), "running 0.45 | laps [16.00] | pace on | target 16.50s ±9%"},
		{"custom target", testutil.NewState().Stopped().WithConfig(testutil.NewPacing().WithTarget(20, 0).WithTolerance(0).Build()).WithLaps(25000).Build(), "stopped 25.00 | laps [25.00] | pace under | target 20.00s ±0%"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.st); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
