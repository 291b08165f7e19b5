package prompts

type PromptName string

const (
	// Module extraction: raw PDF text -> structured module metadata.
	PromptModuleExtract PromptName = "module_extract"
	// Plan generation: modules + weekly slots -> dated study sessions.
	PromptPlanGenerate PromptName = "plan_generate"
	// Week elaboration: one week's sessions -> execution guides.
	PromptWeekElaborate PromptName = "week_elaborate"
)
