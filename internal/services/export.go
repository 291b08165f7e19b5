package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/repos"
)

type ExportService interface {
	PlanCSV(ctx context.Context) ([]byte, error)
	PlanJSON(ctx context.Context) ([]byte, error)
	ModulesJSON(ctx context.Context) ([]byte, error)
}

type exportService struct {
	log     *logger.Logger
	plans   repos.StudyPlanRepo
	modules repos.ModuleRepo
}

func NewExportService(log *logger.Logger, plans repos.StudyPlanRepo, modules repos.ModuleRepo) ExportService {
	return &exportService{
		log:     log.With("service", "ExportService"),
		plans:   plans,
		modules: modules,
	}
}

var csvHeader = []string{
	"Datum",
	"Start",
	"Ende",
	"Modul",
	"Thema",
	"Beschreibung",
	"Lernmethode",
	"Lerntipps",
}

// PlanCSV renders the current plan as CSV. The leading UTF-8 BOM makes
// Excel decode umlauts correctly when the file is double-clicked.
func (s *exportService) PlanCSV(ctx context.Context) ([]byte, error) {
	plan, err := s.plans.GetCurrent(ctx, nil)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, sess := range plan.Sessions {
		record := []string{
			sess.Date.Format(planner.DateLayout),
			sess.StartTime,
			sess.EndTime,
			sess.ModuleName,
			sess.Topic,
			sess.Description,
			sess.LearningMethod,
			sess.StudyTips,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) PlanJSON(ctx context.Context) ([]byte, error) {
	plan, err := s.plans.GetCurrent(ctx, nil)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(plan, "", "  ")
}

func (s *exportService) ModulesJSON(ctx context.Context) ([]byte, error) {
	modules, err := s.modules.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(modules, "", "  ")
}
