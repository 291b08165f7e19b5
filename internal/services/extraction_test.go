package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/studivo/studivo-backend/internal/planner"
	"github.com/studivo/studivo-backend/internal/types"
)

func extractionPayload(title string) map[string]any {
	return map[string]any{
		"title":    title,
		"ects":     5.0,
		"workload": 0.0,
		"assessments": []any{
			map[string]any{"type": "Klausur", "weight": 60.0, "format": "Einzelarbeit", "deadline": "2025-03-31"},
			map[string]any{"type": "Projekt", "weight": 40.0, "format": "Gruppenarbeit", "deadline": nil},
		},
		"content":      []any{"Relationale Algebra", "Normalformen"},
		"competencies": []any{"SQL-Abfragen schreiben"},
	}
}

func TestExtractModulesCreatesModule(t *testing.T) {
	ai := &fakeAI{generateJSON: func(_, user, schemaName string) (map[string]any, error) {
		if schemaName != "module_extract" {
			return nil, fmt.Errorf("unexpected schema %s", schemaName)
		}
		if !strings.Contains(user, "Modul Datenbanken") {
			return nil, fmt.Errorf("document text missing from prompt")
		}
		return extractionPayload("Datenbanken"), nil
	}}
	modules := &fakeModuleRepo{}
	svc := NewExtractionService(testLogger(t), ai, modules)

	results, err := svc.ExtractModules(context.Background(), []UploadedFile{
		{Name: "datenbanken.txt", MimeType: "text/plain", Data: []byte("Modul Datenbanken, 5 ECTS, Klausur 60%, Projekt 40%")},
	})
	if err != nil {
		t.Fatalf("ExtractModules: %v", err)
	}
	if len(results) != 1 || results[0].Error != "" {
		t.Fatalf("unexpected results: %+v", results)
	}

	m := results[0].Module
	if m.Name != "Datenbanken" {
		t.Errorf("name = %q", m.Name)
	}
	if m.WorkloadHours != 150 {
		t.Errorf("workload = %d, want 150 (5 ECTS x 30h)", m.WorkloadHours)
	}
	if m.SourceDocument != "datenbanken.txt" {
		t.Errorf("source document = %q", m.SourceDocument)
	}
	if len(m.Assessments) != 2 {
		t.Fatalf("got %d assessments", len(m.Assessments))
	}
	if m.Assessments[0].Weight+m.Assessments[1].Weight != 100 {
		t.Errorf("weights not normalized: %d + %d", m.Assessments[0].Weight, m.Assessments[1].Weight)
	}
	if m.Assessments[0].Deadline == nil {
		t.Error("deadline was dropped")
	}
	if m.Assessments[1].Deadline != nil {
		t.Error("null deadline should stay nil")
	}
	if len(modules.modules) != 1 {
		t.Error("module was not persisted")
	}
}

func TestExtractModulesIsolatesFailures(t *testing.T) {
	ai := &fakeAI{generateJSON: func(_, user, _ string) (map[string]any, error) {
		if strings.Contains(user, "kaputt") {
			return nil, fmt.Errorf("upstream 500")
		}
		return extractionPayload("Software Engineering"), nil
	}}
	modules := &fakeModuleRepo{}
	svc := NewExtractionService(testLogger(t), ai, modules)

	results, err := svc.ExtractModules(context.Background(), []UploadedFile{
		{Name: "kaputt.txt", MimeType: "text/plain", Data: []byte("kaputt")},
		{Name: "se.txt", MimeType: "text/plain", Data: []byte("Modul Software Engineering")},
	})
	if err != nil {
		t.Fatalf("batch must survive a failing file: %v", err)
	}
	if results[0].Error == "" {
		t.Error("first file should report its failure")
	}
	if results[1].Error != "" || results[1].Module == nil {
		t.Errorf("second file should succeed: %+v", results[1])
	}
	if len(modules.modules) != 1 {
		t.Errorf("persisted %d modules, want 1", len(modules.modules))
	}
}

func TestExtractModulesRejectsDuplicateName(t *testing.T) {
	ai := &fakeAI{generateJSON: func(_, _, _ string) (map[string]any, error) {
		return extractionPayload("Datenbanken"), nil
	}}
	modules := &fakeModuleRepo{modules: []*types.Module{fixtureModule(t, "Datenbanken", "")}}
	svc := NewExtractionService(testLogger(t), ai, modules)

	results, err := svc.ExtractModules(context.Background(), []UploadedFile{
		{Name: "dup.txt", MimeType: "text/plain", Data: []byte("Modul Datenbanken")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(results[0].Error, "already exists") {
		t.Errorf("error = %q, want duplicate-name rejection", results[0].Error)
	}
}

func TestExtractModulesRequiresClient(t *testing.T) {
	svc := NewExtractionService(testLogger(t), nil, &fakeModuleRepo{})
	_, err := svc.ExtractModules(context.Background(), []UploadedFile{{Name: "x.txt", Data: []byte("x")}})
	if !errors.Is(err, planner.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}
