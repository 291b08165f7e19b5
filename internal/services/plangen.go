package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/guidestore"
	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/openai"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/prompts"
	"github.com/studivo/studivo-backend/internal/repos"
	"github.com/studivo/studivo-backend/internal/types"
)

// PlanResult is what plan generation hands back to the API layer.
// Warnings are advisory; a plan with warnings is still a valid plan.
type PlanResult struct {
	Plan     *types.StudyPlan `json:"plan"`
	Warnings []string         `json:"warnings"`
	Fallback bool             `json:"fallback"`
}

type PlanService interface {
	Generate(ctx context.Context) (*PlanResult, error)
	Current(ctx context.Context) (*types.StudyPlan, error)
	Delete(ctx context.Context) error
}

type planService struct {
	log     *logger.Logger
	ai      openai.Client
	modules repos.ModuleRepo
	slots   repos.TimeSlotRepo
	plans   repos.StudyPlanRepo
	guides  guidestore.Store
	now     func() time.Time
}

func NewPlanService(log *logger.Logger, ai openai.Client, modules repos.ModuleRepo, slots repos.TimeSlotRepo, plans repos.StudyPlanRepo, guides guidestore.Store) PlanService {
	return &planService{
		log:     log.With("service", "PlanService"),
		ai:      ai,
		modules: modules,
		slots:   slots,
		plans:   plans,
		guides:  guides,
		now:     time.Now,
	}
}

// Generate runs the full pipeline: preconditions, horizon, one model
// call, validation, audit, persistence. Any unrecoverable model
// failure degrades to the deterministic fallback plan instead of
// returning empty-handed; missing inputs fail fast before any model
// call is made.
func (s *planService) Generate(ctx context.Context) (*PlanResult, error) {
	moduleRows, err := s.modules.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(moduleRows) == 0 {
		return nil, planner.ErrNoModules
	}
	slotRows, err := s.slots.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(slotRows) == 0 {
		return nil, planner.ErrNoTimeSlots
	}
	if s.ai == nil {
		return nil, planner.ErrMissingAPIKey
	}

	modules := derefModules(moduleRows)
	slots := derefSlots(slotRows)

	today := s.now().Truncate(24 * time.Hour)
	start, end, notes := planner.PlanHorizon(modules, today)
	for _, n := range notes {
		s.log.Info("Plan horizon adjusted", "note", n)
	}

	sessions, dropped, usedFallback := s.generateSessions(ctx, modules, slots, start, end)
	for _, reason := range dropped {
		s.log.Warn("Dropped generated session", "reason", reason)
	}

	warnings := planner.Audit(sessions, modules)
	for _, w := range warnings {
		s.log.Warn("Plan audit finding", "warning", w)
	}

	expected := planner.ExpectedSessionCount(planner.WeeksBetween(start, end), len(slots))
	if len(sessions) < expected/2 {
		s.log.Warn("Plan yield is low",
			"sessions", len(sessions),
			"expected", expected,
		)
	}

	plan := &types.StudyPlan{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   end,
		Fallback:  usedFallback,
	}
	for i := range sessions {
		sessions[i].ID = uuid.New()
		sessions[i].PlanID = plan.ID
	}
	plan.Sessions = sessions

	if _, err := s.plans.Replace(ctx, nil, plan); err != nil {
		return nil, err
	}
	// Guides reference the replaced plan's session ids; they are stale now.
	if err := s.guides.DeleteAll(ctx); err != nil {
		s.log.Warn("Failed to clear stale execution guides", "error", err)
	}

	return &PlanResult{Plan: plan, Warnings: warnings, Fallback: usedFallback}, nil
}

// generateSessions tries the model once and falls back to the
// deterministic generator on any unusable outcome.
func (s *planService) generateSessions(ctx context.Context, modules []types.Module, slots []types.TimeSlot, start, end time.Time) ([]types.StudySession, []string, bool) {
	payload := planner.BuildPlanPayload(modules, slots, start, end)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("Plan payload not serializable, using fallback", "error", err)
		return planner.FallbackSessions(modules, slots, start, end), nil, true
	}

	prompt, err := prompts.Build(prompts.PromptPlanGenerate, prompts.Input{
		PayloadJSON:    string(payloadJSON),
		StartDate:      payload.StartDate,
		EndDate:        payload.EndDate,
		Weeks:          payload.Weeks,
		AllowedMethods: strings.Join(types.AllowedLearningMethods, ", "),
	})
	if err != nil {
		s.log.Error("Plan prompt build failed, using fallback", "error", err)
		return planner.FallbackSessions(modules, slots, start, end), nil, true
	}

	resp, err := s.ai.GenerateJSON(ctx, prompt.System, prompt.User, prompt.SchemaName, prompt.Schema)
	if err != nil {
		s.log.Error("Plan generation call failed, using fallback", "error", err)
		return planner.FallbackSessions(modules, slots, start, end), nil, true
	}

	candidates, err := planner.ParseSessions(resp)
	if err != nil {
		s.log.Error("Plan response unusable, using fallback", "error", err)
		return planner.FallbackSessions(modules, slots, start, end), nil, true
	}

	vc := planner.NewValidationContext(start, end, modules)
	accepted, dropped := planner.ValidateSessions(candidates, vc)
	if len(accepted) == 0 {
		s.log.Error("All generated sessions were rejected, using fallback",
			"candidates", len(candidates),
		)
		return planner.FallbackSessions(modules, slots, start, end), dropped, true
	}
	return accepted, dropped, false
}

func (s *planService) Current(ctx context.Context) (*types.StudyPlan, error) {
	return s.plans.GetCurrent(ctx, nil)
}

func (s *planService) Delete(ctx context.Context) error {
	if err := s.plans.DeleteAll(ctx, nil); err != nil {
		return err
	}
	return s.guides.DeleteAll(ctx)
}

func derefModules(rows []*types.Module) []types.Module {
	out := make([]types.Module, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out
}

func derefSlots(rows []*types.TimeSlot) []types.TimeSlot {
	out := make([]types.TimeSlot, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out
}
