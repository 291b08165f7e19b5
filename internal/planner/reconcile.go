package planner

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/studivo/studivo-backend/internal/types"
)

const (
	// Default horizon when no module has a usable deadline.
	defaultHorizonWeeks = 16
	// Deadlines further out than this are treated as extraction noise.
	deadlinePlausibleYears = 2
	// Below this the plan is always considered low-yield.
	minExpectedSessions = 10
)

// PlanHorizon computes the planning range: from today to the latest
// future, plausible assessment deadline, or 16 weeks out when none
// exists, then applies the short/long clamping policy.
func PlanHorizon(modules []types.Module, today time.Time) (time.Time, time.Time, []string) {
	start := today
	var latest time.Time
	limit := today.AddDate(deadlinePlausibleYears, 0, 0)
	for _, m := range modules {
		for _, a := range m.Assessments {
			if a.Deadline == nil {
				continue
			}
			d := *a.Deadline
			if d.After(today) && d.Before(limit) && d.After(latest) {
				latest = d
			}
		}
	}
	end := latest
	if end.IsZero() {
		end = start.AddDate(0, 0, defaultHorizonWeeks*7)
	}
	end, notes := ClampHorizon(start, end)
	return start, end, notes
}

// ExpectedSessionCount is the yield floor a generated plan is measured
// against. Falling far below it is logged, not fatal; partial success
// beats total failure.
func ExpectedSessionCount(weeks, slotsPerWeek int) int {
	expected := weeks * slotsPerWeek
	if expected < minExpectedSessions {
		return minExpectedSessions
	}
	return expected
}

// PlanPayload is the structured input serialized into the model's user
// prompt for plan generation.
type PlanPayload struct {
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Weeks     int             `json:"weeks"`
	Modules   []ModulePayload `json:"modules"`
	TimeSlots []SlotPayload   `json:"timeSlots"`
}

type ModulePayload struct {
	Name         string              `json:"name"`
	ECTS         int                 `json:"ects"`
	Workload     int                 `json:"workloadHours"`
	Content      []string            `json:"content,omitempty"`
	Competencies []string            `json:"competencies,omitempty"`
	Assessments  []AssessmentPayload `json:"assessments"`
}

type AssessmentPayload struct {
	Type     string `json:"type"`
	Weight   int    `json:"weight"`
	Format   string `json:"format"`
	Deadline string `json:"deadline,omitempty"`
}

type SlotPayload struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func BuildPlanPayload(modules []types.Module, slots []types.TimeSlot, start, end time.Time) PlanPayload {
	p := PlanPayload{
		StartDate: start.Format(DateLayout),
		EndDate:   end.Format(DateLayout),
		Weeks:     WeeksBetween(start, end),
	}
	for _, m := range modules {
		mp := ModulePayload{
			Name:         m.Name,
			ECTS:         m.ECTS,
			Workload:     m.WorkloadHours,
			Content:      fromJSONList(m.Content),
			Competencies: fromJSONList(m.Competencies),
		}
		for _, a := range m.Assessments {
			ap := AssessmentPayload{Type: a.Type, Weight: a.Weight, Format: a.Format}
			if a.Deadline != nil {
				ap.Deadline = a.Deadline.Format(DateLayout)
			}
			mp.Assessments = append(mp.Assessments, ap)
		}
		p.Modules = append(p.Modules, mp)
	}
	for _, s := range slots {
		p.TimeSlots = append(p.TimeSlots, SlotPayload{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return p
}

// ParseSessions extracts the candidate session array from a decoded
// model response. A missing or empty sessions array is a generation
// failure, not an empty plan.
func ParseSessions(resp map[string]any) ([]CandidateSession, error) {
	raw, ok := resp["sessions"]
	if !ok {
		return nil, fmt.Errorf("%w: response has no sessions array", ErrGenerationFailed)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: sessions not serializable: %v", ErrGenerationFailed, err)
	}
	var candidates []CandidateSession
	if err := json.Unmarshal(b, &candidates); err != nil {
		return nil, fmt.Errorf("%w: sessions array malformed: %v", ErrGenerationFailed, err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: sessions array empty", ErrGenerationFailed)
	}
	return candidates, nil
}

// FallbackSessions builds a deterministic plan with no model
// involvement: walk every day in the horizon, match it against the
// weekly-recurring slots, and round-robin modules into the matches.
// Personalization is lost but the caller never ends up empty-handed.
func FallbackSessions(modules []types.Module, slots []types.TimeSlot, start, end time.Time) []types.StudySession {
	if len(modules) == 0 || len(slots) == 0 {
		return nil
	}
	var sessions []types.StudySession
	moduleIdx := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, slot := range slots {
			if types.WeekdayIndex(slot.Day) != day.Weekday() {
				continue
			}
			m := modules[moduleIdx%len(modules)]
			moduleIdx++
			sessions = append(sessions, types.StudySession{
				Seq:            len(sessions),
				Date:           day,
				StartTime:      slot.StartTime,
				EndTime:        slot.EndTime,
				ModuleName:     m.Name,
				Topic:          "Selbststudium",
				Description:    fmt.Sprintf("Eigenständige Lerneinheit für %s.", m.Name),
				LearningMethod: types.DefaultLearningMethod,
			})
		}
	}
	return sessions
}

func fromJSONList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
