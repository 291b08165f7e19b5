package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/repos"
	"github.com/studivo/studivo-backend/internal/types"
)

type ModuleService interface {
	Create(ctx context.Context, module *types.Module) (*types.Module, error)
	List(ctx context.Context) ([]*types.Module, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Module, error)
	Update(ctx context.Context, module *types.Module) (*types.Module, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddAssessment(ctx context.Context, moduleID uuid.UUID, a *types.Assessment) (*types.Assessment, error)
	UpdateAssessment(ctx context.Context, id uuid.UUID, a *types.Assessment) (*types.Assessment, error)
	DeleteAssessment(ctx context.Context, id uuid.UUID) error
}

type moduleService struct {
	log        *logger.Logger
	modules    repos.ModuleRepo
	assessment repos.AssessmentRepo
}

func NewModuleService(log *logger.Logger, modules repos.ModuleRepo, assessment repos.AssessmentRepo) ModuleService {
	return &moduleService{
		log:        log.With("service", "ModuleService"),
		modules:    modules,
		assessment: assessment,
	}
}

func (s *moduleService) Create(ctx context.Context, module *types.Module) (*types.Module, error) {
	module.Name = strings.TrimSpace(module.Name)
	if module.Name == "" {
		return nil, fmt.Errorf("module name required")
	}
	if len(module.Assessments) == 0 {
		return nil, fmt.Errorf("module %q needs at least one assessment", module.Name)
	}

	exists, err := s.modules.NameExists(ctx, nil, module.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("module %q already exists", module.Name)
	}

	if module.WorkloadHours <= 0 {
		module.WorkloadHours = module.ECTS * 30
	}
	module.Assessments = planner.NormalizeWeights(module.Assessments)

	if module.ID == uuid.Nil {
		module.ID = uuid.New()
	}
	for i := range module.Assessments {
		if module.Assessments[i].ID == uuid.Nil {
			module.Assessments[i].ID = uuid.New()
		}
		module.Assessments[i].ModuleID = module.ID
	}

	created, err := s.modules.Create(ctx, nil, []*types.Module{module})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *moduleService) List(ctx context.Context) ([]*types.Module, error) {
	return s.modules.GetAll(ctx, nil)
}

func (s *moduleService) Get(ctx context.Context, id uuid.UUID) (*types.Module, error) {
	return s.modules.GetByID(ctx, nil, id)
}

func (s *moduleService) Update(ctx context.Context, module *types.Module) (*types.Module, error) {
	module.Name = strings.TrimSpace(module.Name)
	if module.Name == "" {
		return nil, fmt.Errorf("module name required")
	}

	existing, err := s.modules.GetByID(ctx, nil, module.ID)
	if err != nil {
		return nil, err
	}
	if existing.Name != module.Name {
		taken, err := s.modules.NameExists(ctx, nil, module.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("module %q already exists", module.Name)
		}
	}

	if len(module.Assessments) > 0 {
		module.Assessments = planner.NormalizeWeights(module.Assessments)
		assessments := make([]*types.Assessment, 0, len(module.Assessments))
		for i := range module.Assessments {
			if module.Assessments[i].ID == uuid.Nil {
				module.Assessments[i].ID = uuid.New()
			}
			assessments = append(assessments, &module.Assessments[i])
		}
		if _, err := s.assessment.ReplaceForModule(ctx, nil, module.ID, assessments); err != nil {
			return nil, err
		}
		module.Assessments = nil
	}

	return s.modules.Update(ctx, nil, module)
}

func (s *moduleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.modules.Delete(ctx, nil, id)
}

func (s *moduleService) AddAssessment(ctx context.Context, moduleID uuid.UUID, a *types.Assessment) (*types.Assessment, error) {
	if _, err := s.modules.GetByID(ctx, nil, moduleID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Type) == "" {
		return nil, fmt.Errorf("assessment type required")
	}
	if a.Format == "" {
		a.Format = types.AssessmentFormatEinzelarbeit
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.ModuleID = moduleID

	created, err := s.assessment.Create(ctx, nil, []*types.Assessment{a})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *moduleService) UpdateAssessment(ctx context.Context, id uuid.UUID, a *types.Assessment) (*types.Assessment, error) {
	existing, err := s.assessment.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Type) == "" {
		return nil, fmt.Errorf("assessment type required")
	}
	if a.Format == "" {
		a.Format = existing.Format
	}

	a.ID = existing.ID
	a.ModuleID = existing.ModuleID
	return s.assessment.Update(ctx, nil, a)
}

func (s *moduleService) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	a, err := s.assessment.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	count, err := s.assessment.CountByModuleID(ctx, nil, a.ModuleID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return fmt.Errorf("cannot delete the last assessment of a module")
	}
	return s.assessment.Delete(ctx, nil, id)
}
