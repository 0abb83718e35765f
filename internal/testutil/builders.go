package testutil

import (
	"github.com/akyairhashvil/splitpace/internal/stopwatch"
)

// PacingBuilder provides fluent API for creating test pacing configs.
type PacingBuilder struct {
	cfg stopwatch.PacingConfig
}

func NewPacing() *PacingBuilder {
	return &PacingBuilder{cfg: stopwatch.DefaultPacingConfig()}
}

func (b *PacingBuilder) WithTarget(seconds, tenths int) *PacingBuilder {
	b.cfg.TargetSeconds = seconds
	b.cfg.TargetTenths = tenths
	return b
}

func (b *PacingBuilder) WithTolerance(percent int) *PacingBuilder {
	b.cfg.TolerancePercent = percent
	return b
}

func (b *PacingBuilder) Build() stopwatch.PacingConfig {
	return b.cfg
}

// StateBuilder provides fluent API for creating session snapshots. Derived
// fields (elapsed, boundary, display, target, pacing) are computed in Build
// the same way a Session computes them.
type StateBuilder struct {
	state   stopwatch.TimingState
	laps    []int64
	openLap int64
	cfg     stopwatch.PacingConfig
	rev     uint64
}

func NewState() *StateBuilder {
	return &StateBuilder{
		state: stopwatch.StateIdle,
		cfg:   stopwatch.DefaultPacingConfig(),
	}
}

// Running marks the snapshot as running with openMs on the current lap.
func (b *StateBuilder) Running(openMs int64) *StateBuilder {
	b.state = stopwatch.StateRunning
	b.openLap = openMs
	return b
}

func (b *StateBuilder) Stopped() *StateBuilder {
	b.state = stopwatch.StateStopped
	b.openLap = 0
	return b
}

func (b *StateBuilder) WithLaps(laps ...int64) *StateBuilder {
	b.laps = append([]int64(nil), laps...)
	return b
}

func (b *StateBuilder) WithConfig(cfg stopwatch.PacingConfig) *StateBuilder {
	b.cfg = cfg
	return b
}

func (b *StateBuilder) WithRevision(rev uint64) *StateBuilder {
	b.rev = rev
	return b
}

func (b *StateBuilder) Build() stopwatch.SessionState {
	var boundary int64
	for _, lap := range b.laps {
		boundary += lap
	}
	elapsed := boundary + b.openLap
	display := elapsed
	if b.state == stopwatch.StateRunning {
		display = elapsed - boundary
	}
	st := stopwatch.SessionState{
		State:         b.state,
		ElapsedMs:     elapsed,
		LapBoundaryMs: boundary,
		DisplayMs:     display,
		Laps:          append([]int64(nil), b.laps...),
		Config:        b.cfg,
		TargetMs:      b.cfg.TargetMillis(),
		Revision:      b.rev,
	}
	if n := len(b.laps); n > 0 {
		st.Pacing = stopwatch.Classify(b.laps[n-1], st.TargetMs, b.cfg.TolerancePercent)
	}
	return st
}
