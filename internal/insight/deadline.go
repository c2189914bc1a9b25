package insight

import (
	"math"
	"time"
)

// DeadlineBand classifies how close a deadline is.
type DeadlineBand string

const (
	BandOverdue  DeadlineBand = "overdue"
	BandDueToday DeadlineBand = "due_today"
	BandDueSoon  DeadlineBand = "due_soon"
	BandSafe     DeadlineBand = "safe"
)

const dateLayout = "2006-01-02"

// ParseDeadline parses a date-only (YYYY-MM-DD) or RFC3339 deadline string.
// Absent or unparsable input yields ok=false; callers treat that as "no
// deadline" rather than an error.
func ParseDeadline(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(time.Local), true
	}
	return time.Time{}, false
}

// endOfDay is the last represented instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsOverdue reports whether now is strictly past the end of the deadline's
// calendar day. A deadline is not breached at day start: a task due today is
// not overdue until the day is over.
func IsOverdue(deadline string, now time.Time) bool {
	dl, ok := ParseDeadline(deadline)
	if !ok {
		return false
	}
	return now.After(endOfDay(dl))
}

// DaysUntil returns the calendar-day difference between the deadline and now
// (negative when the deadline is in the past). ok=false when there is no
// parsable deadline.
func DaysUntil(deadline string, now time.Time) (int, bool) {
	dl, ok := ParseDeadline(deadline)
	if !ok {
		return 0, false
	}
	diff := midnight(dl).Sub(midnight(now))
	return int(math.Floor(diff.Hours() / 24)), true
}

// Band buckets a deadline relative to now.
func Band(deadline string, now time.Time) DeadlineBand {
	days, ok := DaysUntil(deadline, now)
	if !ok {
		return BandSafe
	}
	switch {
	case IsOverdue(deadline, now):
		return BandOverdue
	case days == 0:
		return BandDueToday
	case days > 0 && days <= 3:
		return BandDueSoon
	default:
		return BandSafe
	}
}
