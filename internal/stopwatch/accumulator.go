package stopwatch

// Accumulator integrates tick increments into elapsed milliseconds.
type Accumulator struct {
	elapsed int64
}

// Advance adds incrementMs to the elapsed time. Negative increments are
// ignored so the value never decreases.
func (a *Accumulator) Advance(incrementMs int64) {
	if incrementMs <= 0 {
		return
	}
	a.elapsed += incrementMs
}

func (a *Accumulator) Reset() {
	a.elapsed = 0
}

func (a *Accumulator) Elapsed() int64 {
	return a.elapsed
}
