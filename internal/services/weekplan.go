package services

import (
	"context"
	"encoding/json"
	"fmt"
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

// WeekResult is the outcome of elaborating one week into execution
// guides.
type WeekResult struct {
	Guides   []types.ExecutionGuide `json:"guides"`
	Warnings []string               `json:"warnings"`
}

type WeekPlanService interface {
	// ElaborateWeek turns the week's sessions into execution guides and
	// stores them, overwriting earlier guides for the same sessions.
	ElaborateWeek(ctx context.Context, weekStart time.Time) (*WeekResult, error)
	GetGuide(ctx context.Context, sessionID uuid.UUID) (types.ExecutionGuide, bool, error)
	ListGuides(ctx context.Context) (map[uuid.UUID]types.ExecutionGuide, error)
	DeleteGuide(ctx context.Context, sessionID uuid.UUID) error
	DeleteAllGuides(ctx context.Context) error
}

type weekPlanService struct {
	log     *logger.Logger
	ai      openai.Client
	modules repos.ModuleRepo
	plans   repos.StudyPlanRepo
	store   guidestore.Store
	now     func() time.Time
}

func NewWeekPlanService(log *logger.Logger, ai openai.Client, modules repos.ModuleRepo, plans repos.StudyPlanRepo, store guidestore.Store) WeekPlanService {
	return &weekPlanService{
		log:     log.With("service", "WeekPlanService"),
		ai:      ai,
		modules: modules,
		plans:   plans,
		store:   store,
		now:     time.Now,
	}
}

// Unlike plan generation there is no deterministic fallback here. A
// generic guide would not tell the student anything the session row
// does not already say, so a failed week stays unelaborated.
func (s *weekPlanService) ElaborateWeek(ctx context.Context, weekStart time.Time) (*WeekResult, error) {
	if s.ai == nil {
		return nil, planner.ErrMissingAPIKey
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	sessionRows, err := s.plans.GetSessionsInRange(ctx, nil, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	if len(sessionRows) == 0 {
		return nil, fmt.Errorf("no sessions in week starting %s", weekStart.Format(planner.DateLayout))
	}

	sessions := make([]types.StudySession, 0, len(sessionRows))
	byID := make(map[uuid.UUID]types.StudySession, len(sessionRows))
	nameSet := map[string]struct{}{}
	for _, row := range sessionRows {
		sessions = append(sessions, *row)
		byID[row.ID] = *row
		nameSet[row.ModuleName] = struct{}{}
	}

	names := make([]string, 0, len(nameSet))
	for n := range nameSet {
		names = append(names, n)
	}
	moduleRows, err := s.modules.GetByNames(ctx, nil, names)
	if err != nil {
		return nil, err
	}

	sessionsJSON, err := json.Marshal(sessions)
	if err != nil {
		return nil, err
	}
	modulesJSON, err := json.Marshal(moduleRows)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.Build(prompts.PromptWeekElaborate, prompts.Input{
		WeekStart:    weekStart.Format(planner.DateLayout),
		SessionsJSON: string(sessionsJSON),
		ModulesJSON:  string(modulesJSON),
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.ai.GenerateJSON(ctx, prompt.System, prompt.User, prompt.SchemaName, prompt.Schema)
	if err != nil {
		return nil, err
	}

	candidates, err := planner.ParseGuides(resp)
	if err != nil {
		return nil, err
	}

	guides, warnings, dropped := planner.ValidateGuides(candidates, byID, s.now().UTC())
	for _, reason := range dropped {
		s.log.Warn("Dropped execution guide", "reason", reason)
	}
	for _, w := range warnings {
		s.log.Warn("Execution guide warning", "warning", w)
	}
	if len(guides) == 0 {
		return nil, planner.ErrNoValidGuides
	}

	if err := s.store.SetMany(ctx, guides); err != nil {
		return nil, err
	}
	return &WeekResult{Guides: guides, Warnings: warnings}, nil
}

func (s *weekPlanService) GetGuide(ctx context.Context, sessionID uuid.UUID) (types.ExecutionGuide, bool, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *weekPlanService) ListGuides(ctx context.Context) (map[uuid.UUID]types.ExecutionGuide, error) {
	return s.store.GetAll(ctx)
}

func (s *weekPlanService) DeleteGuide(ctx context.Context, sessionID uuid.UUID) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *weekPlanService) DeleteAllGuides(ctx context.Context) error {
	return s.store.DeleteAll(ctx)
}
