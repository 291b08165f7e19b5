package planner

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestWeeksBetween(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "two_weeks", start: "2024-12-01", end: "2024-12-15", want: 2},
		{name: "reversed_never_negative", start: "2024-12-15", end: "2024-12-01", want: 0},
		{name: "same_day", start: "2024-12-01", end: "2024-12-01", want: 0},
		{name: "partial_week_rounds_up", start: "2024-12-01", end: "2024-12-04", want: 1},
		{name: "exact_week", start: "2024-12-01", end: "2024-12-08", want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeeksBetween(date(t, tc.start), date(t, tc.end))
			if got != tc.want {
				t.Fatalf("WeeksBetween(%s, %s)=%d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "12:00"}
	invalid := []string{"24:00", "9:30", "12:60", "12.30", "", "1200", "ab:cd", "12:5"}
	for _, s := range valid {
		if !IsValidTime(s) {
			t.Fatalf("IsValidTime(%q)=false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTime(s) {
			t.Fatalf("IsValidTime(%q)=true, want false", s)
		}
	}
}

func TestClampHorizon(t *testing.T) {
	start := date(t, "2025-01-01")

	t.Run("short_horizon_extended", func(t *testing.T) {
		end, notes := ClampHorizon(start, date(t, "2025-01-04"))
		if want := date(t, "2025-01-25"); !end.Equal(want) {
			t.Fatalf("end=%s, want %s", end.Format(DateLayout), want.Format(DateLayout))
		}
		if len(notes) != 1 {
			t.Fatalf("expected one note, got %v", notes)
		}
	})

	t.Run("long_horizon_clamped", func(t *testing.T) {
		end, notes := ClampHorizon(start, date(t, "2027-06-01"))
		if want := date(t, "2026-01-01"); !end.Equal(want) {
			t.Fatalf("end=%s, want %s", end.Format(DateLayout), want.Format(DateLayout))
		}
		if len(notes) != 1 {
			t.Fatalf("expected one note, got %v", notes)
		}
	})

	t.Run("reasonable_horizon_untouched", func(t *testing.T) {
		end, notes := ClampHorizon(start, date(t, "2025-04-01"))
		if !end.Equal(date(t, "2025-04-01")) {
			t.Fatalf("end moved to %s", end.Format(DateLayout))
		}
		if len(notes) != 0 {
			t.Fatalf("unexpected notes %v", notes)
		}
	})
}
