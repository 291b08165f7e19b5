package prompts

// RegisterAll registers every prompt used by the planner services.
// Call once at startup before any Build.
func RegisterAll() {
	RegisterSpec(Spec{
		Name:       PromptModuleExtract,
		Version:    1,
		SchemaName: "module_extract",
		Schema:     ModuleExtractSchema,
		System: `
You extract structured course module data from German university module handbooks and syllabi.
Only report facts stated in the document text. Never invent assessments, ECTS values or deadlines.
If the document names no workload, set workload to 0; the caller derives it from ECTS.
Assessment weights are percentages; copy them as written even if they do not sum to 100.
Deadlines must be ISO dates (YYYY-MM-DD) or null.
Return JSON only.`,
		User: `
Document: {{.DocumentName}}

Document text:
{{.DocumentText}}

Extract:
- title: the official module name.
- ects: ECTS credit points (number).
- workload: total workload in hours, 0 if not stated.
- assessments: every graded assessment with type, weight (percent), format (Einzelarbeit or Gruppenarbeit) and deadline.
- content: the listed content topics, in document order.
- competencies: the listed learning outcomes, in document order.`,
		Validators: []Validator{
			RequireNonEmpty("DocumentText", func(in Input) string { return in.DocumentText }),
		},
	})

	RegisterSpec(Spec{
		Name:       PromptPlanGenerate,
		Version:    1,
		SchemaName: "plan_generate",
		Schema:     PlanGenerateSchema,
		System: `
You are a study coach building a dated study plan for a German university student.
Sessions may only use the weekly time slots given in the payload and must stay inside the plan horizon.
Use only the module names from the payload, spelled exactly as given.
learningMethod must be one of: {{.AllowedMethods}}.
Distribute effort by assessment weight and workload; schedule review sessions before deadlines.
Every session needs a concrete topic and a one-sentence description.
Return JSON only.`,
		User: `
Plan horizon: {{.StartDate}} to {{.EndDate}} ({{.Weeks}} weeks).

Planning payload:
{{.PayloadJSON}}

Rules:
- date: ISO date (YYYY-MM-DD) inside the horizon, on a weekday that has a matching slot.
- startTime/endTime: exactly the slot times (HH:MM, 24h).
- contentTopics/competencies: picked from the module's lists, relevant to the session topic.
- studyTips: one short practical tip in German.
- planSummary: 2-4 sentences in German describing the overall strategy.`,
		Validators: []Validator{
			RequireNonEmpty("PayloadJSON", func(in Input) string { return in.PayloadJSON }),
			RequireNonEmpty("StartDate", func(in Input) string { return in.StartDate }),
			RequireNonEmpty("EndDate", func(in Input) string { return in.EndDate }),
		},
	})

	RegisterSpec(Spec{
		Name:       PromptWeekElaborate,
		Version:    1,
		SchemaName: "week_elaborate",
		Schema:     WeekElaborateSchema,
		System: `
You turn planned study sessions into concrete execution guides a student can follow without further preparation.
Produce one guide per session, keyed by the session's id, copied exactly.
Agenda phase durations are minutes and should sum to the session's length.
Method ideas must fit the session's learningMethod.
Write sessionGoal, agenda, deliverable and readyCheck in German.
Return JSON only.`,
		User: `
Week starting {{.WeekStart}}.

Sessions:
{{.SessionsJSON}}

Module details:
{{.ModulesJSON}}

Per guide:
- sessionGoal: one measurable goal for the session.
- agenda: 2-5 phases with duration in minutes and a concrete description.
- methodIdeas: 1-3 ways to apply the session's learning method to this topic.
- tools: apps or materials that help (may be empty).
- deliverable: the artifact the student has at the end.
- readyCheck: one question to verify the goal was reached.
- summary: 1-2 sentences in German about the week's focus.`,
		Validators: []Validator{
			RequireNonEmpty("SessionsJSON", func(in Input) string { return in.SessionsJSON }),
			RequireNonEmpty("ModulesJSON", func(in Input) string { return in.ModulesJSON }),
		},
	})
}
