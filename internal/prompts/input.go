package prompts

// Input is a superset of all fields any prompt might need.
// Missing fields render empty strings (templates use missingkey=zero).
type Input struct {
	// Module extraction
	DocumentName string
	DocumentText string

	// Plan generation
	PayloadJSON    string
	StartDate      string
	EndDate        string
	Weeks          int
	AllowedMethods string

	// Week elaboration
	WeekStart    string
	SessionsJSON string
	ModulesJSON  string
}
