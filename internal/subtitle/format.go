// Package subtitle renders caption snippets into the supported text output
// formats: plain text, SubRip (SRT), and WebVTT.
package subtitle

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/BryanJamesMedia/youtube-transcript-api/internal/captions"
)

// FormatText renders snippets as plain text, one caption line per row.
// No trailing newline is added; an empty transcript yields an empty string.
func FormatText(snippets []captions.Snippet) string {
	lines := make([]string, 0, len(snippets))
	for _, s := range snippets {
		lines = append(lines, s.Text)
	}
	return strings.Join(lines, "\n")
}

// FormatSRT renders snippets as SubRip cues: a 1-based index line, a
// "start --> end" line, the caption text, and a blank separator line. The
// cue end is start plus duration. Trailing whitespace is trimmed and the
// output always ends with exactly one newline; an empty transcript yields
// a single newline.
func FormatSRT(snippets []captions.Snippet) string {
	lines := make([]string, 0, len(snippets)*4)
	for i, s := range snippets {
		lines = append(lines,
			strconv.Itoa(i+1),
			srtTimestamp(s.Start)+" --> "+srtTimestamp(s.Start+s.Duration),
			s.Text,
			"",
		)
	}
	return finish(lines)
}

// FormatVTT renders snippets as WebVTT: the "WEBVTT" header followed by
// uncounted cues in SRT shape with '.' before the milliseconds. An empty
// transcript yields just the header line.
func FormatVTT(snippets []captions.Snippet) string {
	lines := make([]string, 0, len(snippets)*3+2)
	lines = append(lines, "WEBVTT", "")
	for _, s := range snippets {
		lines = append(lines,
			vttTimestamp(s.Start)+" --> "+vttTimestamp(s.Start+s.Duration),
			s.Text,
			"",
		)
	}
	return finish(lines)
}

func finish(lines []string) string {
	joined := strings.Join(lines, "\n")
	return strings.TrimRightFunc(joined, unicode.IsSpace) + "\n"
}
