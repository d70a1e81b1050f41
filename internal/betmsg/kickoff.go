// Package betmsg parses the alert messages produced by the upstream +EV
// scanner into structured bet fields.
package betmsg

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dotClockPattern = regexp.MustCompile(`^(\d{1,2})\.(\d{2})`)
	kickoffPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s+(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
)

// ParseKickoff parses a kickoff text of the form "hh:mm dd.mm.yyyy" (the
// scanner also emits "hh.mm dd.mm.yyyy") into a local time. Returns nil when
// the text does not match.
func ParseKickoff(text string) *time.Time {
	if text == "" {
		return nil
	}

	// Normalize "21.00 26.08.2025" to "21:00 26.08.2025".
	norm := dotClockPattern.ReplaceAllString(strings.TrimSpace(text), "$1:$2")

	m := kickoffPattern.FindStringSubmatch(norm)
	if m == nil {
		return nil
	}

	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	dd, _ := strconv.Atoi(m[3])
	mo, _ := strconv.Atoi(m[4])
	yyyy, _ := strconv.Atoi(m[5])

	kickoff := time.Date(yyyy, time.Month(mo), dd, hh, mm, 0, 0, time.Local)

	return &kickoff
}
