package subtitle

import (
	"fmt"
	"math"
)

// srtTimestamp renders a position in seconds as an SRT cue timestamp
// (HH:MM:SS,mmm).
func srtTimestamp(seconds float64) string {
	return timestamp(seconds, ',')
}

// vttTimestamp renders a position in seconds as a WebVTT cue timestamp
// (HH:MM:SS.mmm).
func vttTimestamp(seconds float64) string {
	return timestamp(seconds, '.')
}

// timestamp rounds to the nearest millisecond (halves round away from zero)
// and decomposes into hours, minutes, seconds, and milliseconds. The hours
// field widens past two digits when needed.
func timestamp(seconds float64, sep byte) string {
	ms := int64(math.Round(seconds * 1000))
	hours := ms / 3_600_000
	ms %= 3_600_000
	minutes := ms / 60_000
	ms %= 60_000
	secs := ms / 1_000
	ms %= 1_000
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, ms)
}
