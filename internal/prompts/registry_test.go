package prompts

import (
	"strings"
	"testing"
)

func TestBuildRendersRegisteredPrompts(t *testing.T) {
	RegisterAll()

	in := Input{
		DocumentName:   "modulhandbuch.pdf",
		DocumentText:   "Modul Datenbanken, 5 ECTS",
		PayloadJSON:    `{"modules":[]}`,
		StartDate:      "2025-01-06",
		EndDate:        "2025-04-28",
		Weeks:          16,
		AllowedMethods: "Active Recall, Spaced Repetition",
		WeekStart:      "2025-01-06",
		SessionsJSON:   `[{"id":"abc"}]`,
		ModulesJSON:    `[{"name":"Datenbanken"}]`,
	}

	cases := []struct {
		name   PromptName
		schema string
		inUser string
		inSys  string
	}{
		{PromptModuleExtract, "module_extract", "modulhandbuch.pdf", "module handbooks"},
		{PromptPlanGenerate, "plan_generate", "2025-01-06 to 2025-04-28 (16 weeks)", "Active Recall, Spaced Repetition"},
		{PromptWeekElaborate, "week_elaborate", "Week starting 2025-01-06", "execution guides"},
	}

	for _, tc := range cases {
		t.Run(string(tc.name), func(t *testing.T) {
			p, err := Build(tc.name, in)
			if err != nil {
				t.Fatalf("Build(%s): %v", tc.name, err)
			}
			if p.SchemaName != tc.schema {
				t.Errorf("schema name = %q, want %q", p.SchemaName, tc.schema)
			}
			if p.Schema == nil {
				t.Error("schema is nil")
			}
			if !strings.Contains(p.User, tc.inUser) {
				t.Errorf("user prompt missing %q:\n%s", tc.inUser, p.User)
			}
			if !strings.Contains(p.System, tc.inSys) {
				t.Errorf("system prompt missing %q:\n%s", tc.inSys, p.System)
			}
		})
	}
}

func TestBuildUnknownPrompt(t *testing.T) {
	RegisterAll()
	if _, err := Build(PromptName("nope"), Input{}); err == nil {
		t.Fatal("expected error for unknown prompt")
	}
}

func TestBuildValidatorRejectsEmptyInput(t *testing.T) {
	RegisterAll()
	if _, err := Build(PromptModuleExtract, Input{DocumentName: "x.pdf"}); err == nil {
		t.Fatal("expected error for empty document text")
	}
	if _, err := Build(PromptPlanGenerate, Input{PayloadJSON: "{}", StartDate: "2025-01-06"}); err == nil {
		t.Fatal("expected error for missing end date")
	}
}

func TestFingerprintChangesWithInput(t *testing.T) {
	RegisterAll()
	base := Input{DocumentName: "a.pdf", DocumentText: "Modul A"}
	p1, err := Build(PromptModuleExtract, base)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Build(PromptModuleExtract, base)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Fingerprint() != p2.Fingerprint() {
		t.Error("same input should produce the same fingerprint")
	}
	other := base
	other.DocumentText = "Modul B"
	p3, err := Build(PromptModuleExtract, other)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Fingerprint() == p3.Fingerprint() {
		t.Error("different input should produce a different fingerprint")
	}
}
