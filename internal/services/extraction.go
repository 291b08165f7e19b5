package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/openai"
	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/prompts"
	"github.com/studivo/studivo-backend/internal/repos"
	"github.com/studivo/studivo-backend/internal/types"
)

// UploadedFile is one document handed to module extraction.
type UploadedFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// FileResult reports what happened to one uploaded file. A failed file
// never aborts the batch.
type FileResult struct {
	FileName string        `json:"fileName"`
	Module   *types.Module `json:"module,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type ExtractionService interface {
	ExtractModules(ctx context.Context, files []UploadedFile) ([]FileResult, error)
}

type extractionService struct {
	log     *logger.Logger
	ai      openai.Client
	modules repos.ModuleRepo
}

func NewExtractionService(log *logger.Logger, ai openai.Client, modules repos.ModuleRepo) ExtractionService {
	return &extractionService{
		log:     log.With("service", "ExtractionService"),
		ai:      ai,
		modules: modules,
	}
}

// moduleExtraction mirrors the module_extract response schema.
type moduleExtraction struct {
	Title        string  `json:"title"`
	ECTS         float64 `json:"ects"`
	Workload     float64 `json:"workload"`
	Assessments  []struct {
		Type     string  `json:"type"`
		Weight   float64 `json:"weight"`
		Format   string  `json:"format"`
		Deadline *string `json:"deadline"`
	} `json:"assessments"`
	Content      []string `json:"content"`
	Competencies []string `json:"competencies"`
}

func (s *extractionService) ExtractModules(ctx context.Context, files []UploadedFile) ([]FileResult, error) {
	if s.ai == nil {
		return nil, planner.ErrMissingAPIKey
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files uploaded")
	}

	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		module, err := s.extractOne(ctx, f)
		if err != nil {
			s.log.Warn("Module extraction failed for file", "file", f.Name, "error", err)
			results = append(results, FileResult{FileName: f.Name, Error: err.Error()})
			continue
		}
		results = append(results, FileResult{FileName: f.Name, Module: module})
	}
	return results, nil
}

func (s *extractionService) extractOne(ctx context.Context, f UploadedFile) (*types.Module, error) {
	text, err := ExtractText(f.Name, f.MimeType, f.Data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text extracted from %s", f.Name)
	}

	prompt, err := prompts.Build(prompts.PromptModuleExtract, prompts.Input{
		DocumentName: f.Name,
		DocumentText: text,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.ai.GenerateJSON(ctx, prompt.System, prompt.User, prompt.SchemaName, prompt.Schema)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var ext moduleExtraction
	if err := json.Unmarshal(raw, &ext); err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}

	ext.Title = strings.TrimSpace(ext.Title)
	if ext.Title == "" {
		return nil, fmt.Errorf("extraction found no module title in %s", f.Name)
	}
	if len(ext.Assessments) == 0 {
		return nil, fmt.Errorf("extraction found no assessments in %s", f.Name)
	}

	exists, err := s.modules.NameExists(ctx, nil, ext.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("module %q already exists", ext.Title)
	}

	module := &types.Module{
		ID:             uuid.New(),
		Name:           ext.Title,
		ECTS:           int(ext.ECTS),
		WorkloadHours:  int(ext.Workload),
		Content:        toJSONList(ext.Content),
		Competencies:   toJSONList(ext.Competencies),
		SourceDocument: f.Name,
	}
	if module.WorkloadHours <= 0 {
		// The usual ECTS convention: 30 hours per credit point.
		module.WorkloadHours = module.ECTS * 30
	}

	for _, a := range ext.Assessments {
		assessment := types.Assessment{
			ID:       uuid.New(),
			ModuleID: module.ID,
			Type:     strings.TrimSpace(a.Type),
			Weight:   int(a.Weight),
			Format:   a.Format,
		}
		if assessment.Format != types.AssessmentFormatGruppenarbeit {
			assessment.Format = types.AssessmentFormatEinzelarbeit
		}
		if a.Deadline != nil && strings.TrimSpace(*a.Deadline) != "" {
			if d, err := time.Parse(planner.DateLayout, strings.TrimSpace(*a.Deadline)); err == nil {
				assessment.Deadline = &d
			} else {
				s.log.Warn("Dropping unparseable deadline", "file", f.Name, "deadline", *a.Deadline)
			}
		}
		module.Assessments = append(module.Assessments, assessment)
	}
	module.Assessments = planner.NormalizeWeights(module.Assessments)

	created, err := s.modules.Create(ctx, nil, []*types.Module{module})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func toJSONList(items []string) datatypes.JSON {
	if len(items) == 0 {
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
