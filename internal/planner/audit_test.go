package planner

import (
	"strings"
	"testing"

	"github.com/studivo/studivo-backend/internal/types"
)

func session(t *testing.T, day, start, end, module string) types.StudySession {
	t.Helper()
	return types.StudySession{
		Date:        date(t, day),
		StartTime:   start,
		EndTime:     end,
		ModuleName:  module,
		Topic:       "Thema",
		Description: "Beschreibung",
	}
}

func TestAuditDailyLoad(t *testing.T) {
	sessions := []types.StudySession{
		session(t, "2025-01-10", "08:00", "13:00", "Datenbanken"),
		session(t, "2025-01-10", "14:00", "18:30", "Software Engineering"),
	}
	warnings := Audit(sessions, nil)
	if len(warnings) == 0 || !strings.Contains(warnings[0], "2025-01-10") {
		t.Fatalf("expected daily load warning for 2025-01-10, got %v", warnings)
	}

	light := []types.StudySession{
		session(t, "2025-01-10", "08:00", "10:00", "Datenbanken"),
	}
	if warnings := Audit(light, nil); len(warnings) != 0 {
		t.Fatalf("unexpected warnings for light day: %v", warnings)
	}
}

func TestAuditModuleMonotony(t *testing.T) {
	sessions := []types.StudySession{
		session(t, "2025-01-10", "08:00", "09:00", "Datenbanken"),
		session(t, "2025-01-10", "10:00", "11:00", "Datenbanken"),
		session(t, "2025-01-10", "12:00", "13:00", "Datenbanken"),
	}
	warnings := Audit(sessions, nil)
	found := false
	for _, w := range warnings {
		if strings.Contains(w, `"Datenbanken"`) && strings.Contains(w, "3 times") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected monotony warning, got %v", warnings)
	}

	twice := sessions[:2]
	for _, w := range Audit(twice, nil) {
		if strings.Contains(w, "appears") {
			t.Fatalf("monotony warning at exactly two sessions: %v", w)
		}
	}
}

func TestAuditConsecutiveDays(t *testing.T) {
	var sessions []types.StudySession
	start := date(t, "2025-01-06")
	for i := 0; i < 6; i++ {
		d := start.AddDate(0, 0, i)
		sessions = append(sessions, session(t, d.Format(DateLayout), "09:00", "10:00", "Datenbanken"))
	}
	warnings := Audit(sessions, nil)
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "6 consecutive") && strings.Contains(w, "2025-01-06") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected consecutive-day warning, got %v", warnings)
	}

	// A rest day breaks the run.
	withGap := append([]types.StudySession{}, sessions[:5]...)
	withGap = append(withGap, session(t, "2025-01-12", "09:00", "10:00", "Datenbanken"))
	for _, w := range Audit(withGap, nil) {
		if strings.Contains(w, "consecutive") {
			t.Fatalf("unexpected consecutive-day warning: %v", w)
		}
	}
}

func TestAuditMissingExamReview(t *testing.T) {
	deadline := date(t, "2025-01-20")
	modules := []types.Module{
		{
			Name: "Datenbanken",
			Assessments: []types.Assessment{
				{Type: "Schriftliche Prüfung", Weight: 100, Deadline: &deadline},
			},
		},
	}

	// No session for the module inside the 14-day window.
	bare := []types.StudySession{
		session(t, "2024-12-20", "09:00", "11:00", "Datenbanken"),
	}
	warnings := Audit(bare, modules)
	count := 0
	for _, w := range warnings {
		if strings.Contains(w, `"Datenbanken"`) && strings.Contains(w, "2025-01-20") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one pre-exam warning, got %v", warnings)
	}

	// One session inside the window removes the warning.
	reviewed := append(bare, session(t, "2025-01-10", "09:00", "11:00", "Datenbanken"))
	for _, w := range Audit(reviewed, modules) {
		if strings.Contains(w, "review") {
			t.Fatalf("unexpected pre-exam warning: %v", w)
		}
	}
}

func TestAuditOrderFollowsCheckOrder(t *testing.T) {
	deadline := date(t, "2025-02-01")
	modules := []types.Module{
		{Name: "Datenbanken", Assessments: []types.Assessment{{Type: "Prüfung", Weight: 100, Deadline: &deadline}}},
	}
	sessions := []types.StudySession{
		session(t, "2025-01-10", "08:00", "13:00", "Datenbanken"),
		session(t, "2025-01-10", "13:00", "18:00", "Datenbanken"),
		session(t, "2025-01-10", "18:00", "19:00", "Datenbanken"),
	}
	warnings := Audit(sessions, modules)
	if len(warnings) < 3 {
		t.Fatalf("expected load, monotony, and review warnings, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "daily load") {
		t.Fatalf("first warning is not daily load: %v", warnings)
	}
	if !strings.Contains(warnings[1], "appears") {
		t.Fatalf("second warning is not monotony: %v", warnings)
	}
	if !strings.Contains(warnings[len(warnings)-1], "review") {
		t.Fatalf("last warning is not pre-exam review: %v", warnings)
	}
}

func TestAuditNeverMutates(t *testing.T) {
	s := session(t, "2025-01-10", "08:00", "09:00", "Datenbanken")
	_ = Audit([]types.StudySession{s}, nil)
	if s.ModuleName != "Datenbanken" || !s.Date.Equal(date(t, "2025-01-10")) {
		t.Fatalf("audit mutated session: %+v", s)
	}
}
