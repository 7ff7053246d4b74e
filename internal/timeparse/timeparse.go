// Package timeparse implements the relative-time parsing contract for
// user input: a plain integer hour, a "+N"/"in N" minute offset, or a
// human date string, in that order of preference.
package timeparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/xeruf/mostr-go/internal/debug"
)

var parser = newParser()

func newParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseTrackingStamp turns a human-entered string into a Unix second
// timestamp, relative to now. Returns (0, false) if nothing could be
// made of it — the caller refuses the command and logs.
func ParseTrackingStamp(input string, now time.Time) (int64, bool) {
	return ParseTrackingStampMaxFuture(input, now, 6)
}

// ParseTrackingStampMaxFuture is ParseTrackingStamp with a caller-supplied
// max-future-hours bound for the plain-integer-hour case (config key
// timeparse.max-future-hours), instead of the default of 6.
func ParseTrackingStampMaxFuture(input string, now time.Time, maxFutureHours int) (int64, bool) {
	if hour, ok := parseHour(input, now, maxFutureHours); ok {
		return hour.Unix(), true
	}
	if sec, ok := parseMinuteOffset(input, now); ok {
		return sec, true
	}
	if t, ok := parseHumanDate(input, now); ok {
		if t.Unix() <= 0 {
			debug.Logf("timeparse: refusing to track a time before 1970 (%q)", input)
			return 0, false
		}
		return t.Unix(), true
	}
	debug.Logf("timeparse: could not parse %q", input)
	return 0, false
}

// parseHour handles the plain-integer-hour case: "hour n of today,"
// shifted back a day if more than maxFutureHours in the future.
func parseHour(input string, now time.Time, maxFutureHours int) (time.Time, bool) {
	hour, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return time.Time{}, false
	}
	loc := now.Location()
	candidate := time.Date(now.Year(), now.Month(), now.Day(), int(hour), 0, 0, 0, loc)
	if candidate.Sub(now) > time.Duration(maxFutureHours)*time.Hour {
		candidate = candidate.AddDate(0, 0, -1)
	}
	return candidate, true
}

// parseMinuteOffset handles "+N" and "in N": n minutes from now.
func parseMinuteOffset(input string, now time.Time) (int64, bool) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimPrefix(s, "in ")
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return now.Add(time.Duration(n) * time.Minute).Unix(), true
}

// parseHumanDate is the natural-language fallback. If the input carries
// no digits at all, the resulting time-of-day is normalized to local
// midnight.
func parseHumanDate(input string, now time.Time) (time.Time, bool) {
	r, err := parser.Parse(input, now)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	t := r.Time
	if !containsDigit(input) {
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	return t, true
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
