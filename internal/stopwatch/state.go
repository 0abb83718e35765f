package stopwatch

// TimingState governs which commands a Session accepts.
type TimingState int

const (
	StateIdle TimingState = iota
	StateRunning
	StateStopped
)

func (s TimingState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// SessionState is an immutable snapshot of a Session taken after a command.
// Revision increases with every change so observers can drop stale copies.
type SessionState struct {
	State         TimingState
	ElapsedMs     int64
	LapBoundaryMs int64
	DisplayMs     int64
	Laps          []int64
	Pacing        Pacing
	Config        PacingConfig
	TargetMs      int64
	Revision      uint64
}

// Running reports whether the session is timing.
func (s SessionState) Running() bool {
	return s.State == StateRunning
}

// LastLap returns the newest completed lap.
func (s SessionState) LastLap() (int64, bool) {
	if len(s.Laps) == 0 {
		return 0, false
	}
	return s.Laps[len(s.Laps)-1], true
}

// CurrentLapMs is the time spent in the lap that is still open.
func (s SessionState) CurrentLapMs() int64 {
	return s.ElapsedMs - s.LapBoundaryMs
}

// displayMillis shows the open lap while running and the total otherwise.
func displayMillis(state TimingState, elapsed, boundary int64) int64 {
	if state == StateRunning {
		return elapsed - boundary
	}
	return elapsed
}
