package platform

import (
	"regexp"
	"strconv"
	"strings"
)

// Markers in yt-dlp output lines
const (
	DownloadTag             = "[download]"
	DestinationMarker       = "Destination"
	AlreadyDownloadedMarker = "has already been downloaded"
)

var (
	// ANSI escape sequences, stripped before logging or parsing
	ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

	rePercent = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)%`)
	reSpeed   = regexp.MustCompile(`\bat\s+([^\s]+)`)
)

// StripANSI removes terminal escape sequences from a subprocess line
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// ProgressEvent is what a single output line contributes to job state.
// HasPercent gates Percent; fields left zero mean the line said nothing
// about them.
type ProgressEvent struct {
	HasPercent  bool
	Percent     int
	Speed       string
	Destination bool // "[download] Destination: ..." — transfer about to begin
	AlreadyDone bool // file was downloaded on a previous run
}

// ParseProgressLine extracts progress information from one output line.
// Lines that carry no recognized pattern return the zero event, leaving
// the job's last known values untouched.
func ParseProgressLine(line string) ProgressEvent {
	line = strings.TrimSpace(StripANSI(line))

	var ev ProgressEvent
	if line == "" {
		return ev
	}

	if strings.Contains(line, AlreadyDownloadedMarker) {
		ev.AlreadyDone = true
		ev.HasPercent = true
		ev.Percent = 100
		return ev
	}

	if !strings.Contains(line, DownloadTag) {
		return ev
	}

	if strings.Contains(line, DestinationMarker) {
		ev.Destination = true
		return ev
	}

	if m := rePercent.FindStringSubmatch(line); len(m) > 1 {
		if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
			ev.HasPercent = true
			ev.Percent = clampPercent(int(pct))
		}
	}
	if m := reSpeed.FindStringSubmatch(line); len(m) > 1 {
		ev.Speed = m[1]
	}
	return ev
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
