package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/studivo/studivo-backend/internal/types"
)

// Fixed audit policy. Not user-configurable and applied identically to
// every module.
const (
	DailyLoadLimitMinutes = 480
	MaxSameModulePerDay   = 2
	ConsecutiveDayLimit   = 6
	ExamReviewWindowDays  = 14
)

// Audit is a read-only scan over the accepted session set. It flags
// cognitive-overload patterns as advisory warnings and never blocks
// downstream use. Output follows check order: daily load, module
// monotony, consecutive study days, missing pre-exam review.
func Audit(sessions []types.StudySession, modules []types.Module) []string {
	var warnings []string
	warnings = append(warnings, auditDailyLoad(sessions)...)
	warnings = append(warnings, auditModuleMonotony(sessions)...)
	warnings = append(warnings, auditConsecutiveDays(sessions)...)
	warnings = append(warnings, auditExamReview(sessions, modules)...)
	return warnings
}

func auditDailyLoad(sessions []types.StudySession) []string {
	load := map[string]int{}
	for _, s := range sessions {
		load[s.Date.Format(DateLayout)] += s.DurationMinutes()
	}
	var warnings []string
	for _, day := range sortedKeys(load) {
		if total := load[day]; total > DailyLoadLimitMinutes {
			warnings = append(warnings, fmt.Sprintf(
				"daily load on %s is %d minutes, %d over the %d minute limit",
				day, total, total-DailyLoadLimitMinutes, DailyLoadLimitMinutes))
		}
	}
	return warnings
}

func auditModuleMonotony(sessions []types.StudySession) []string {
	perDay := map[string]map[string]int{}
	for _, s := range sessions {
		day := s.Date.Format(DateLayout)
		if perDay[day] == nil {
			perDay[day] = map[string]int{}
		}
		perDay[day][s.ModuleName]++
	}
	var warnings []string
	for _, day := range sortedKeys(perDay) {
		counts := perDay[day]
		for _, module := range sortedKeys(counts) {
			if n := counts[module]; n > MaxSameModulePerDay {
				warnings = append(warnings, fmt.Sprintf(
					"module %q appears %d times on %s", module, n, day))
			}
		}
	}
	return warnings
}

func auditConsecutiveDays(sessions []types.StudySession) []string {
	seen := map[string]time.Time{}
	for _, s := range sessions {
		day := s.Date.Format(DateLayout)
		seen[day] = s.Date
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var warnings []string
	runStart := 0
	for i := 1; i <= len(days); i++ {
		if i < len(days) && days[i].Sub(days[i-1]) == 24*time.Hour {
			continue
		}
		if run := i - runStart; run >= ConsecutiveDayLimit {
			warnings = append(warnings, fmt.Sprintf(
				"%d consecutive study days starting %s",
				run, days[runStart].Format(DateLayout)))
		}
		runStart = i
	}
	return warnings
}

func auditExamReview(sessions []types.StudySession, modules []types.Module) []string {
	var warnings []string
	for _, m := range modules {
		for _, a := range m.Assessments {
			if a.Deadline == nil {
				continue
			}
			deadline := *a.Deadline
			windowStart := deadline.AddDate(0, 0, -ExamReviewWindowDays)
			reviewed := false
			for _, s := range sessions {
				if s.ModuleName != m.Name {
					continue
				}
				if !s.Date.Before(windowStart) && !s.Date.After(deadline) {
					reviewed = true
					break
				}
			}
			if !reviewed {
				warnings = append(warnings, fmt.Sprintf(
					"no review session for module %q within %d days before deadline %s",
					m.Name, ExamReviewWindowDays, deadline.Format(DateLayout)))
			}
		}
	}
	return warnings
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
