package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudyPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StartDate time.Time      `gorm:"column:start_date;not null" json:"startDate"`
	EndDate   time.Time      `gorm:"column:end_date;not null" json:"endDate"`
	Fallback  bool           `gorm:"column:fallback;not null;default:false" json:"fallback"`
	Sessions  []StudySession `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanID;references:ID" json:"sessions"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updatedAt"`
}

func (StudyPlan) TableName() string { return "study_plan" }

// StudySession is one dated, validated study unit. Seq is the fresh
// sequential id assigned during validation; ids supplied by the model
// are discarded.
type StudySession struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"planId"`
	Seq            int            `gorm:"column:seq;not null" json:"seq"`
	Date           time.Time      `gorm:"column:date;not null;index" json:"date"`
	StartTime      string         `gorm:"column:start_time;not null" json:"startTime"`
	EndTime        string         `gorm:"column:end_time;not null" json:"endTime"`
	ModuleName     string         `gorm:"column:module_name;not null;index" json:"module"`
	Topic          string         `gorm:"column:topic;not null" json:"topic"`
	Description    string         `gorm:"column:description;not null" json:"description"`
	LearningMethod string         `gorm:"column:learning_method" json:"learningMethod,omitempty"`
	ContentTopics  datatypes.JSON `gorm:"column:content_topics;type:jsonb" json:"contentTopics,omitempty"`
	Competencies   datatypes.JSON `gorm:"column:competencies;type:jsonb" json:"competencies,omitempty"`
	StudyTips      string         `gorm:"column:study_tips" json:"studyTips,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (StudySession) TableName() string { return "study_session" }

// DurationMinutes is the wall-clock span of the session, 0 when either
// time is malformed.
func (s StudySession) DurationMinutes() int {
	start, ok1 := parseClock(s.StartTime)
	end, ok2 := parseClock(s.EndTime)
	if !ok1 || !ok2 || end <= start {
		return 0
	}
	return end - start
}

func parseClock(hhmm string) (int, bool) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, false
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	for _, c := range hhmm {
		if c != ':' && (c < '0' || c > '9') {
			return 0, false
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
