package planner

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/studivo/studivo-backend/internal/types"
)

// CandidateSession is one raw session record as the model emitted it.
// Nothing in here is trusted yet.
type CandidateSession struct {
	ID             any      `json:"id,omitempty"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Module         string   `json:"module"`
	Topic          string   `json:"topic"`
	Description    string   `json:"description"`
	LearningMethod string   `json:"learningMethod,omitempty"`
	ContentTopics  []string `json:"contentTopics,omitempty"`
	Competencies   []string `json:"competencies,omitempty"`
	StudyTips      string   `json:"studyTips,omitempty"`
}

// ValidationContext carries everything the session validator needs to
// decide accept/reject.
type ValidationContext struct {
	PlanStart     time.Time
	PlanEnd       time.Time
	ModuleNames   map[string]struct{}
	DefaultMethod string
}

func NewValidationContext(start, end time.Time, modules []types.Module) ValidationContext {
	names := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		names[m.Name] = struct{}{}
	}
	return ValidationContext{
		PlanStart:     start,
		PlanEnd:       end,
		ModuleNames:   names,
		DefaultMethod: types.DefaultLearningMethod,
	}
}

// ValidateSessions filters and repairs raw session records. Rules apply
// in order and the first failure drops the record; a bad learning
// method is repaired instead, because the session's date and content
// are still valuable even when the tag was hallucinated. Accepted
// sessions keep the model's emission order and get fresh sequential
// ids, since model-supplied ids may collide or be absent.
//
// One malformed entry never aborts the batch; each drop is returned as
// a reason string for the caller to log.
func ValidateSessions(candidates []CandidateSession, vc ValidationContext) ([]types.StudySession, []string) {
	accepted := make([]types.StudySession, 0, len(candidates))
	var dropped []string

	for i, c := range candidates {
		date, err := ParseDate(c.Date)
		if err != nil {
			dropped = append(dropped, fmt.Sprintf("session %d: unparsable date %q", i, c.Date))
			continue
		}
		if date.Before(vc.PlanStart) || date.After(vc.PlanEnd) {
			dropped = append(dropped, fmt.Sprintf("session %d: date %s outside plan range", i, c.Date))
			continue
		}

		// Exact match only. Guessing which module a misspelled name meant
		// would attach sessions to the wrong course.
		if _, ok := vc.ModuleNames[c.Module]; !ok {
			dropped = append(dropped, fmt.Sprintf("session %d: unknown module %q", i, c.Module))
			continue
		}

		method := c.LearningMethod
		if method != "" && !types.IsAllowedLearningMethod(method) {
			method = vc.DefaultMethod
		}

		if !IsValidTime(c.StartTime) || !IsValidTime(c.EndTime) {
			dropped = append(dropped, fmt.Sprintf("session %d: bad time format %q-%q", i, c.StartTime, c.EndTime))
			continue
		}
		if c.StartTime >= c.EndTime {
			dropped = append(dropped, fmt.Sprintf("session %d: start %q not before end %q", i, c.StartTime, c.EndTime))
			continue
		}

		if c.Topic == "" || c.Description == "" {
			dropped = append(dropped, fmt.Sprintf("session %d: empty topic or description", i))
			continue
		}

		accepted = append(accepted, types.StudySession{
			Seq:            len(accepted),
			Date:           date,
			StartTime:      c.StartTime,
			EndTime:        c.EndTime,
			ModuleName:     c.Module,
			Topic:          c.Topic,
			Description:    c.Description,
			LearningMethod: method,
			ContentTopics:  toJSONList(c.ContentTopics),
			Competencies:   toJSONList(c.Competencies),
			StudyTips:      c.StudyTips,
		})
	}
	return accepted, dropped
}

func toJSONList(items []string) datatypes.JSON {
	if len(items) == 0 {
		return nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
