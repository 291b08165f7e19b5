package prompts

import "github.com/studivo/studivo-backend/internal/types"

// OpenAI strict JSON schema rules for object schemas:
// - additionalProperties must be present and false
// - required must list EVERY key in properties
// Optional semantics are expressed with nullable types or empty values
// and enforced in code after parsing.

func ObjectSchema(properties map[string]any) map[string]any {
	req := make([]string, 0, len(properties))
	for k := range properties {
		req = append(req, k)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             req,
		"additionalProperties": false,
	}
}

func ArraySchema(items map[string]any) map[string]any {
	return map[string]any{
		"type":  "array",
		"items": items,
	}
}

func StringSchema() map[string]any {
	return map[string]any{"type": "string"}
}

func StringOrNullSchema() map[string]any {
	return map[string]any{
		"type": []any{"string", "null"},
	}
}

func StringArraySchema() map[string]any {
	return ArraySchema(StringSchema())
}

func NumberSchema() map[string]any {
	return map[string]any{"type": "number"}
}

func IntSchema() map[string]any {
	return map[string]any{"type": "integer"}
}

func EnumSchema(values ...string) map[string]any {
	arr := make([]any, 0, len(values))
	for _, v := range values {
		arr = append(arr, v)
	}
	return map[string]any{"type": "string", "enum": arr}
}

// ---------- module extraction ----------

func AssessmentSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"type":   StringSchema(),
		"weight": NumberSchema(),
		"format": EnumSchema(
			types.AssessmentFormatEinzelarbeit,
			types.AssessmentFormatGruppenarbeit,
		),
		// ISO date or null when the document names no deadline.
		"deadline": StringOrNullSchema(),
	})
}

func ModuleExtractSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"title":        StringSchema(),
		"ects":         NumberSchema(),
		"workload":     NumberSchema(),
		"assessments":  ArraySchema(AssessmentSchema()),
		"content":      StringArraySchema(),
		"competencies": StringArraySchema(),
	})
}

// ---------- plan generation ----------

func SessionSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"date":           StringSchema(),
		"startTime":      StringSchema(),
		"endTime":        StringSchema(),
		"module":         StringSchema(),
		"topic":          StringSchema(),
		"description":    StringSchema(),
		"learningMethod": EnumSchema(types.AllowedLearningMethods...),
		"contentTopics":  StringArraySchema(),
		"competencies":   StringArraySchema(),
		"studyTips":      StringSchema(),
	})
}

func PlanGenerateSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"sessions":    ArraySchema(SessionSchema()),
		"planSummary": StringSchema(),
	})
}

// ---------- week elaboration ----------

func AgendaPhaseSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"phase":       StringSchema(),
		"duration":    IntSchema(),
		"description": StringSchema(),
	})
}

func ExecutionGuideSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"sessionId":   StringSchema(),
		"sessionGoal": StringSchema(),
		"agenda":      ArraySchema(AgendaPhaseSchema()),
		"methodIdeas": StringArraySchema(),
		"tools":       StringArraySchema(),
		"deliverable": StringSchema(),
		"readyCheck":  StringSchema(),
	})
}

func WeekElaborateSchema() map[string]any {
	return ObjectSchema(map[string]any{
		"executionGuides": ArraySchema(ExecutionGuideSchema()),
		"summary":         StringSchema(),
	})
}
