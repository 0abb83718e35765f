package stopwatch

import "fmt"

// FormatMillis renders milliseconds as seconds with two decimals, rounding
// half away from zero ("16.50", "0.07").
func FormatMillis(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	cs := (ms + 5) / 10
	return fmt.Sprintf("%s%d.%02d", sign, cs/100, cs%100)
}
