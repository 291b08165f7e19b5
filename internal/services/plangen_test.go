package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/guidestore"
	"github.com/studivo/studivo-backend/internal/openai"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/types"
)

func newPlanFixture(t *testing.T, ai *fakeAI) (*planService, *fakePlanRepo, guidestore.Store) {
	t.Helper()
	modules := &fakeModuleRepo{modules: []*types.Module{
		fixtureModule(t, "Datenbanken", "2025-03-31"),
		fixtureModule(t, "Software Engineering", ""),
	}}
	slots := &fakeSlotRepo{slots: []*types.TimeSlot{
		fixtureSlot("Montag", "09:00", "11:00"),
		fixtureSlot("Donnerstag", "14:00", "16:00"),
	}}
	plans := &fakePlanRepo{}
	store := guidestore.NewMemoryStore()

	var client openai.Client
	if ai != nil {
		client = ai
	}
	svc := NewPlanService(testLogger(t), client, modules, slots, plans, store).(*planService)
	svc.now = func() time.Time { return testDate(t, "2025-01-06") }
	return svc, plans, store
}

func validSessionPayload(date string) map[string]any {
	return map[string]any{
		"date":           date,
		"startTime":      "09:00",
		"endTime":        "11:00",
		"module":         "Datenbanken",
		"topic":          "Relationale Algebra",
		"description":    "Grundoperationen durcharbeiten und Beispiele rechnen.",
		"learningMethod": "Active Recall",
		"contentTopics":  []any{"Relationale Algebra"},
		"competencies":   []any{},
		"studyTips":      "Mit kleinen Beispielen starten.",
	}
}

func TestGenerateAcceptsModelPlan(t *testing.T) {
	ai := &fakeAI{generateJSON: func(_, _, schemaName string) (map[string]any, error) {
		if schemaName != "plan_generate" {
			return nil, fmt.Errorf("unexpected schema %s", schemaName)
		}
		return map[string]any{
			"sessions": []any{
				validSessionPayload("2025-01-13"),
				validSessionPayload("2025-01-20"),
			},
			"planSummary": "Fokus auf Datenbanken.",
		}, nil
	}}
	svc, plans, _ := newPlanFixture(t, ai)

	result, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.Fallback {
		t.Error("model plan should not be marked fallback")
	}
	if len(result.Plan.Sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(result.Plan.Sessions))
	}
	for i, sess := range result.Plan.Sessions {
		if sess.ID == uuid.Nil {
			t.Errorf("session %d has no id", i)
		}
		if sess.PlanID != result.Plan.ID {
			t.Errorf("session %d not linked to plan", i)
		}
		if sess.Seq != i {
			t.Errorf("session %d has seq %d", i, sess.Seq)
		}
	}
	if plans.plan == nil {
		t.Fatal("plan was not persisted")
	}
	if ai.calls != 1 {
		t.Errorf("model called %d times, want 1", ai.calls)
	}
}

func TestGenerateFallsBackOnModelError(t *testing.T) {
	ai := &fakeAI{generateJSON: func(_, _, _ string) (map[string]any, error) {
		return nil, fmt.Errorf("upstream 500")
	}}
	svc, plans, _ := newPlanFixture(t, ai)

	result, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate should degrade, not fail: %v", err)
	}
	if !result.Fallback {
		t.Error("plan should be marked fallback")
	}
	if len(result.Plan.Sessions) == 0 {
		t.Fatal("fallback produced no sessions")
	}
	for _, sess := range result.Plan.Sessions {
		if sess.Topic != "Selbststudium" {
			t.Errorf("fallback topic = %q", sess.Topic)
		}
		if sess.LearningMethod != types.DefaultLearningMethod {
			t.Errorf("fallback method = %q", sess.LearningMethod)
		}
	}
	if plans.plan == nil || !plans.plan.Fallback {
		t.Error("persisted plan should carry the fallback flag")
	}
}

func TestGenerateFallsBackWhenAllSessionsRejected(t *testing.T) {
	bad := validSessionPayload("2025-01-13")
	bad["module"] = "Nonexistent101"
	ai := &fakeAI{generateJSON: func(_, _, _ string) (map[string]any, error) {
		return map[string]any{"sessions": []any{bad}}, nil
	}}
	svc, _, _ := newPlanFixture(t, ai)

	result, err := svc.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !result.Fallback {
		t.Error("plan with zero accepted sessions should fall back")
	}
}

func TestGeneratePreconditions(t *testing.T) {
	t.Run("no_modules", func(t *testing.T) {
		svc, _, _ := newPlanFixture(t, &fakeAI{})
		svc.modules = &fakeModuleRepo{}
		if _, err := svc.Generate(context.Background()); !errors.Is(err, planner.ErrNoModules) {
			t.Errorf("err = %v, want ErrNoModules", err)
		}
	})
	t.Run("no_slots", func(t *testing.T) {
		svc, _, _ := newPlanFixture(t, &fakeAI{})
		svc.slots = &fakeSlotRepo{}
		if _, err := svc.Generate(context.Background()); !errors.Is(err, planner.ErrNoTimeSlots) {
			t.Errorf("err = %v, want ErrNoTimeSlots", err)
		}
	})
	t.Run("no_api_key", func(t *testing.T) {
		svc, _, _ := newPlanFixture(t, nil)
		if _, err := svc.Generate(context.Background()); !errors.Is(err, planner.ErrMissingAPIKey) {
			t.Errorf("err = %v, want ErrMissingAPIKey", err)
		}
	})
}

func TestGenerateClearsStaleGuides(t *testing.T) {
	ai := &fakeAI{generateJSON: func(_, _, _ string) (map[string]any, error) {
		return map[string]any{"sessions": []any{validSessionPayload("2025-01-13")}}, nil
	}}
	svc, _, store := newPlanFixture(t, ai)

	stale := uuid.New()
	_ = store.Set(context.Background(), types.ExecutionGuide{SessionID: stale, SessionGoal: "alt"})

	if _, err := svc.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get(context.Background(), stale); ok {
		t.Error("stale guide survived plan regeneration")
	}
}
