package planner

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// DateLayout is the wire format for all plan dates.
const DateLayout = "2006-01-02"

const (
	// Horizons shorter than this are useless and get extended.
	minHorizonDays = 7
	horizonExtendDays = 21
	// Horizons longer than a year are runaway model output and get clamped.
	maxHorizonDays = 365
)

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime reports whether s is a well-formed HH:MM clock value.
func IsValidTime(s string) bool {
	return clockRe.MatchString(s)
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// WeeksBetween returns ceil(days/7) between start and end. A reversed
// range yields 0, never a negative count; callers log the reversal.
func WeeksBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := end.Sub(start).Hours() / 24
	return int(math.Ceil(days / 7))
}

// ClampHorizon applies the planning date-range policy: a horizon under
// 7 days is extended by 21 days, one over 365 days is clamped to
// exactly 365 days from start. Returns the adjusted end plus
// advisory notes about what was changed.
func ClampHorizon(start, end time.Time) (time.Time, []string) {
	var notes []string
	days := int(end.Sub(start).Hours() / 24)
	if days < minHorizonDays {
		end = end.AddDate(0, 0, horizonExtendDays)
		notes = append(notes, fmt.Sprintf("planning horizon of %d days too short, extended by %d days", days, horizonExtendDays))
	} else if days > maxHorizonDays {
		end = start.AddDate(0, 0, maxHorizonDays)
		notes = append(notes, fmt.Sprintf("planning horizon of %d days too long, clamped to %d days", days, maxHorizonDays))
	}
	return end, notes
}
