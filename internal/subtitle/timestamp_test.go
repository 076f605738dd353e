package subtitle

import "testing"

func TestTimestamps(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		srt     string
		vtt     string
	}{
		{"zero", 0.0, "00:00:00,000", "00:00:00.000"},
		{"hours minutes seconds millis", 3661.5, "01:01:01,500", "01:01:01.500"},
		{"half millisecond rounds up", 0.0005, "00:00:00,001", "00:00:00.001"},
		{"sub-millisecond rounds down", 0.0004, "00:00:00,000", "00:00:00.000"},
		{"rounding rolls into the next minute", 59.9996, "00:01:00,000", "00:01:00.000"},
		{"just under the hour", 3599.999, "00:59:59,999", "00:59:59.999"},
		{"beyond one hour", 7322.25, "02:02:02,250", "02:02:02.250"},
		{"hours field widens", 360000.0, "100:00:00,000", "100:00:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := srtTimestamp(tt.seconds); got != tt.srt {
				t.Errorf("srtTimestamp(%v) = %q, want %q", tt.seconds, got, tt.srt)
			}
			if got := vttTimestamp(tt.seconds); got != tt.vtt {
				t.Errorf("vttTimestamp(%v) = %q, want %q", tt.seconds, got, tt.vtt)
			}
		})
	}
}
