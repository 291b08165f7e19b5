package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(planner.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// ---------- model client fake ----------

type fakeAI struct {
	generateJSON func(system, user, schemaName string) (map[string]any, error)
	calls        int
}

func (f *fakeAI) GenerateJSON(_ context.Context, system, user, schemaName string, _ map[string]any) (map[string]any, error) {
	f.calls++
	return f.generateJSON(system, user, schemaName)
}

func (f *fakeAI) GenerateText(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("not implemented")
}

// ---------- repo fakes ----------

type fakeModuleRepo struct {
	modules []*types.Module
}

func (f *fakeModuleRepo) Create(_ context.Context, _ *gorm.DB, modules []*types.Module) ([]*types.Module, error) {
	f.modules = append(f.modules, modules...)
	return modules, nil
}

func (f *fakeModuleRepo) GetAll(context.Context, *gorm.DB) ([]*types.Module, error) {
	return f.modules, nil
}

func (f *fakeModuleRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Module, error) {
	for _, m := range f.modules {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeModuleRepo) GetByNames(_ context.Context, _ *gorm.DB, names []string) ([]*types.Module, error) {
	var out []*types.Module
	for _, m := range f.modules {
		for _, n := range names {
			if m.Name == n {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (f *fakeModuleRepo) NameExists(_ context.Context, _ *gorm.DB, name string) (bool, error) {
	for _, m := range f.modules {
		if m.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeModuleRepo) Update(_ context.Context, _ *gorm.DB, module *types.Module) (*types.Module, error) {
	for i, m := range f.modules {
		if m.ID == module.ID {
			f.modules[i] = module
			return module, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeModuleRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	for i, m := range f.modules {
		if m.ID == id {
			f.modules = append(f.modules[:i], f.modules[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAssessmentRepo struct {
	assessments []*types.Assessment
}

func (f *fakeAssessmentRepo) Create(_ context.Context, _ *gorm.DB, assessments []*types.Assessment) ([]*types.Assessment, error) {
	f.assessments = append(f.assessments, assessments...)
	return assessments, nil
}

func (f *fakeAssessmentRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Assessment, error) {
	for _, a := range f.assessments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssessmentRepo) GetByModuleID(_ context.Context, _ *gorm.DB, moduleID uuid.UUID) ([]*types.Assessment, error) {
	var out []*types.Assessment
	for _, a := range f.assessments {
		if a.ModuleID == moduleID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssessmentRepo) CountByModuleID(_ context.Context, _ *gorm.DB, moduleID uuid.UUID) (int64, error) {
	var count int64
	for _, a := range f.assessments {
		if a.ModuleID == moduleID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAssessmentRepo) Update(_ context.Context, _ *gorm.DB, assessment *types.Assessment) (*types.Assessment, error) {
	for i, a := range f.assessments {
		if a.ID == assessment.ID {
			f.assessments[i] = assessment
			return assessment, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAssessmentRepo) ReplaceForModule(_ context.Context, _ *gorm.DB, moduleID uuid.UUID, assessments []*types.Assessment) ([]*types.Assessment, error) {
	kept := f.assessments[:0]
	for _, a := range f.assessments {
		if a.ModuleID != moduleID {
			kept = append(kept, a)
		}
	}
	for _, a := range assessments {
		a.ModuleID = moduleID
	}
	f.assessments = append(kept, assessments...)
	return assessments, nil
}

func (f *fakeAssessmentRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	for i, a := range f.assessments {
		if a.ID == id {
			f.assessments = append(f.assessments[:i], f.assessments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSlotRepo struct {
	slots []*types.TimeSlot
}

func (f *fakeSlotRepo) Create(_ context.Context, _ *gorm.DB, slots []*types.TimeSlot) ([]*types.TimeSlot, error) {
	f.slots = append(f.slots, slots...)
	return slots, nil
}

func (f *fakeSlotRepo) GetAll(context.Context, *gorm.DB) ([]*types.TimeSlot, error) {
	return f.slots, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.TimeSlot, error) {
	for _, s := range f.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSlotRepo) Update(_ context.Context, _ *gorm.DB, slot *types.TimeSlot) (*types.TimeSlot, error) {
	for i, s := range f.slots {
		if s.ID == slot.ID {
			f.slots[i] = slot
			return slot, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSlotRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	for i, s := range f.slots {
		if s.ID == id {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePlanRepo struct {
	plan *types.StudyPlan
}

func (f *fakePlanRepo) Replace(_ context.Context, _ *gorm.DB, plan *types.StudyPlan) (*types.StudyPlan, error) {
	f.plan = plan
	return plan, nil
}

func (f *fakePlanRepo) GetCurrent(context.Context, *gorm.DB) (*types.StudyPlan, error) {
	if f.plan == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.plan, nil
}

func (f *fakePlanRepo) DeleteAll(context.Context, *gorm.DB) error {
	f.plan = nil
	return nil
}

func (f *fakePlanRepo) GetSessionByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.StudySession, error) {
	if f.plan == nil {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range f.plan.Sessions {
		if f.plan.Sessions[i].ID == id {
			return &f.plan.Sessions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePlanRepo) GetSessionsInRange(_ context.Context, _ *gorm.DB, from, to time.Time) ([]*types.StudySession, error) {
	var out []*types.StudySession
	if f.plan == nil {
		return out, nil
	}
	for i := range f.plan.Sessions {
		d := f.plan.Sessions[i].Date
		if !d.Before(from) && !d.After(to) {
			out = append(out, &f.plan.Sessions[i])
		}
	}
	return out, nil
}

// ---------- fixtures ----------

func fixtureModule(t *testing.T, name string, deadline string) *types.Module {
	t.Helper()
	m := &types.Module{
		ID:            uuid.New(),
		Name:          name,
		ECTS:          5,
		WorkloadHours: 150,
	}
	a := types.Assessment{
		ID:       uuid.New(),
		ModuleID: m.ID,
		Type:     "Klausur",
		Weight:   100,
		Format:   types.AssessmentFormatEinzelarbeit,
	}
	if deadline != "" {
		d := testDate(t, deadline)
		a.Deadline = &d
	}
	m.Assessments = []types.Assessment{a}
	return m
}

func fixtureSlot(day, start, end string) *types.TimeSlot {
	return &types.TimeSlot{
		ID:        uuid.New(),
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}
}
