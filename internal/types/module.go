package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Module struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"column:name;not null;uniqueIndex" json:"name"`
	ECTS           int            `gorm:"column:ects;not null" json:"ects"`
	WorkloadHours  int            `gorm:"column:workload_hours;not null" json:"workloadHours"`
	Content        datatypes.JSON `gorm:"column:content;type:jsonb" json:"content,omitempty"`
	Competencies   datatypes.JSON `gorm:"column:competencies;type:jsonb" json:"competencies,omitempty"`
	SourceDocument string         `gorm:"column:source_document" json:"sourceDocument,omitempty"`
	Assessments    []Assessment   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModuleID;references:ID" json:"assessments"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Module) TableName() string { return "module" }

const (
	AssessmentFormatEinzelarbeit  = "Einzelarbeit"
	AssessmentFormatGruppenarbeit = "Gruppenarbeit"
)

type Assessment struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ModuleID uuid.UUID  `gorm:"type:uuid;not null;index" json:"moduleId"`
	Type     string     `gorm:"column:type;not null" json:"type"`
	Weight   int        `gorm:"column:weight;not null" json:"weight"`
	Format   string     `gorm:"column:format;not null;default:'Einzelarbeit'" json:"format"`
	Deadline *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Assessment) TableName() string { return "assessment" }
