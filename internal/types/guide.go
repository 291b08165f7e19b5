package types

import (
	"time"

	"github.com/google/uuid"
)

// AgendaPhase is one step of an execution guide's agenda.
type AgendaPhase struct {
	Phase       string `json:"phase"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// ExecutionGuide is the second-pass elaboration of one StudySession.
// It lives in the guide store, keyed by session id, not in the
// relational schema; it back-references the session and may be created,
// overwritten, or deleted independently of it.
type ExecutionGuide struct {
	SessionID   uuid.UUID     `json:"sessionId"`
	SessionGoal string        `json:"sessionGoal"`
	Agenda      []AgendaPhase `json:"agenda"`
	MethodIdeas []string      `json:"methodIdeas"`
	Tools       []string      `json:"tools"`
	Deliverable string        `json:"deliverable"`
	ReadyCheck  string        `json:"readyCheck"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// AgendaMinutes sums the planned phase durations.
func (g ExecutionGuide) AgendaMinutes() int {
	total := 0
	for _, p := range g.Agenda {
		total += p.Duration
	}
	return total
}
