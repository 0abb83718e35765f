package stopwatch

// RecordLap computes the duration of the lap closing at elapsed and the
// boundary that the next lap starts from. first reports whether no lap has
// been recorded yet in this session.
func RecordLap(elapsed, previousBoundary int64, first bool) (duration, newBoundary int64, err error) {
	if elapsed < previousBoundary {
		return 0, previousBoundary, ErrInvalidBoundary
	}
	duration = elapsed - previousBoundary
	if first {
		return duration, duration, nil
	}
	return duration, previousBoundary + duration, nil
}

// LapRecorder keeps the append-only list of completed lap durations and the
// cumulative boundary of the most recent one.
type LapRecorder struct {
	boundary int64
	laps     []int64
}

// Record closes the current lap at elapsed and appends its duration.
func (r *LapRecorder) Record(elapsed int64) (int64, error) {
	duration, boundary, err := RecordLap(elapsed, r.boundary, len(r.laps) == 0)
	if err != nil {
		return 0, err
	}
	r.boundary = boundary
	r.laps = append(r.laps, duration)
	return duration, nil
}

func (r *LapRecorder) Boundary() int64 {
	return r.boundary
}

// Laps returns a copy of the recorded durations in chronological order.
func (r *LapRecorder) Laps() []int64 {
	out := make([]int64, len(r.laps))
	copy(out, r.laps)
	return out
}

// Last returns the newest lap duration.
func (r *LapRecorder) Last() (int64, bool) {
	if len(r.laps) == 0 {
		return 0, false
	}
	return r.laps[len(r.laps)-1], true
}

func (r *LapRecorder) Len() int {
	return len(r.laps)
}

func (r *LapRecorder) Reset() {
	r.boundary = 0
	r.laps = nil
}
