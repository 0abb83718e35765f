package stopwatch

import "math"

// Pacing classifies the most recent lap against the target.
type Pacing int

const (
	PacingUnset Pacing = iota
	PacingUnder
	PacingOn
	PacingOver
)

func (p Pacing) String() string {
	switch p {
	case PacingUnder:
		return "under"
	case PacingOn:
		return "on"
	case PacingOver:
		return "over"
	default:
		return ""
	}
}

// offsetEpsilon absorbs float rounding so ratios that are exactly on the
// tolerance band (16500/15000) stay inclusive.
const offsetEpsilon = 1e-9

// TargetMillis combines the configured seconds and tenths into milliseconds.
func TargetMillis(seconds, tenths int) int64 {
	return int64(seconds)*1000 + int64(tenths)*100
}

// OffsetPercent is the signed deviation of a lap from the target, in percent.
// A lap shorter than the target yields a positive offset.
func OffsetPercent(lastLapMs, targetMs int64) float64 {
	if lastLapMs <= 0 {
		return 0
	}
	return float64(targetMs)/float64(lastLapMs)*100 - 100
}

// Classify buckets a lap into Under, On or Over. The tolerance band is
// inclusive. A lap of zero length has no pace and yields PacingUnset.
func Classify(lastLapMs, targetMs int64, tolerancePercent int) Pacing {
	if lastLapMs <= 0 {
		return PacingUnset
	}
	offset := OffsetPercent(lastLapMs, targetMs)
	tol := float64(tolerancePercent)
	switch {
	case math.Abs(offset) <= tol+offsetEpsilon:
		return PacingOn
	case offset > tol:
		return PacingOver
	default:
		return PacingUnder
	}
}
