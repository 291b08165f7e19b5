package planner

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/types"
)

// GuideDurationToleranceMinutes is how far the agenda total may drift
// from the session's wall-clock duration before a warning is emitted.
// The mismatch never rejects the guide; it is still usable.
const GuideDurationToleranceMinutes = 5

// CandidateGuide is one raw execution guide as the model emitted it.
type CandidateGuide struct {
	SessionID   string               `json:"sessionId"`
	SessionGoal string               `json:"sessionGoal"`
	Agenda      []CandidateAgendaRow `json:"agenda"`
	MethodIdeas []string             `json:"methodIdeas"`
	Tools       []string             `json:"tools"`
	Deliverable string               `json:"deliverable"`
	ReadyCheck  string               `json:"readyCheck"`
}

type CandidateAgendaRow struct {
	Phase       string `json:"phase"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// ParseGuides extracts the executionGuides array from a decoded model
// response.
func ParseGuides(resp map[string]any) ([]CandidateGuide, error) {
	raw, ok := resp["executionGuides"]
	if !ok {
		return nil, fmt.Errorf("%w: response has no executionGuides array", ErrNoValidGuides)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: executionGuides not serializable: %v", ErrNoValidGuides, err)
	}
	var candidates []CandidateGuide
	if err := json.Unmarshal(b, &candidates); err != nil {
		return nil, fmt.Errorf("%w: executionGuides array malformed: %v", ErrNoValidGuides, err)
	}
	return candidates, nil
}

// ValidateGuides checks each candidate's structural shape against the
// sessions being elaborated. Structural failures drop the guide;
// a guide whose agenda total misses the session duration by more than
// the tolerance is kept with a warning. Durations are keyed by session
// id.
func ValidateGuides(candidates []CandidateGuide, sessions map[uuid.UUID]types.StudySession, now time.Time) ([]types.ExecutionGuide, []string, []string) {
	var guides []types.ExecutionGuide
	var warnings []string
	var dropped []string

	for i, c := range candidates {
		sid, err := uuid.Parse(c.SessionID)
		if err != nil {
			dropped = append(dropped, fmt.Sprintf("guide %d: invalid session id %q", i, c.SessionID))
			continue
		}
		session, ok := sessions[sid]
		if !ok {
			dropped = append(dropped, fmt.Sprintf("guide %d: session %s not in elaborated week", i, sid))
			continue
		}
		if c.SessionGoal == "" || c.Deliverable == "" || c.ReadyCheck == "" {
			dropped = append(dropped, fmt.Sprintf("guide %d: missing goal, deliverable, or ready check", i))
			continue
		}
		if len(c.Agenda) == 0 {
			dropped = append(dropped, fmt.Sprintf("guide %d: empty agenda", i))
			continue
		}
		agendaOK := true
		for _, row := range c.Agenda {
			if row.Phase == "" || row.Duration <= 0 || row.Description == "" {
				agendaOK = false
				break
			}
		}
		if !agendaOK {
			dropped = append(dropped, fmt.Sprintf("guide %d: agenda item missing phase, duration, or description", i))
			continue
		}
		if len(c.MethodIdeas) == 0 {
			dropped = append(dropped, fmt.Sprintf("guide %d: no method ideas", i))
			continue
		}
		if len(c.MethodIdeas) < 2 {
			warnings = append(warnings, fmt.Sprintf(
				"guide for session %s has a single method idea, expected 2-4", sid))
		}

		guide := types.ExecutionGuide{
			SessionID:   sid,
			SessionGoal: c.SessionGoal,
			MethodIdeas: c.MethodIdeas,
			Tools:       c.Tools,
			Deliverable: c.Deliverable,
			ReadyCheck:  c.ReadyCheck,
			GeneratedAt: now,
		}
		for _, row := range c.Agenda {
			guide.Agenda = append(guide.Agenda, types.AgendaPhase{
				Phase:       row.Phase,
				Duration:    row.Duration,
				Description: row.Description,
			})
		}

		if dur := session.DurationMinutes(); dur > 0 {
			diff := guide.AgendaMinutes() - dur
			if diff < -GuideDurationToleranceMinutes || diff > GuideDurationToleranceMinutes {
				warnings = append(warnings, fmt.Sprintf(
					"guide for session %s plans %d minutes but the session lasts %d",
					sid, guide.AgendaMinutes(), dur))
			}
		}
		guides = append(guides, guide)
	}
	return guides, warnings, dropped
}
