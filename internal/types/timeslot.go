package types

import (
	"time"

	"github.com/google/uuid"
)

// Weekdays in calendar order. Slot days and the fallback generator both
// key off these German names.
var Weekdays = []string{
	"Montag",
	"Dienstag",
	"Mittwoch",
	"Donnerstag",
	"Freitag",
	"Samstag",
	"Sonntag",
}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// WeekdayIndex maps a German weekday name to time.Weekday, -1 if unknown.
func WeekdayIndex(day string) time.Weekday {
	switch day {
	case "Montag":
		return time.Monday
	case "Dienstag":
		return time.Tuesday
	case "Mittwoch":
		return time.Wednesday
	case "Donnerstag":
		return time.Thursday
	case "Freitag":
		return time.Friday
	case "Samstag":
		return time.Saturday
	case "Sonntag":
		return time.Sunday
	default:
		return time.Weekday(-1)
	}
}

// TimeSlot is a weekly-recurring availability window, not a single
// calendar event.
type TimeSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Day       string    `gorm:"column:day;not null" json:"day"`
	StartTime string    `gorm:"column:start_time;not null" json:"startTime"`
	EndTime   string    `gorm:"column:end_time;not null" json:"endTime"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (TimeSlot) TableName() string { return "time_slot" }
