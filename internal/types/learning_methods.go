package types

// AllowedLearningMethods is the closed set of method tags a session may
// carry. Anything else coming back from the model is replaced with
// DefaultLearningMethod during validation.
var AllowedLearningMethods = []string{
	"Spaced Repetition",
	"Active Recall",
	"Deep Work",
	"Pomodoro",
	"Feynman-Methode",
	"Interleaving",
	"Probeklausur",
}

// DefaultLearningMethod is the repair value for hallucinated method
// tags. A retrieval-practice style default keeps the session useful
// even when the tag was invented.
const DefaultLearningMethod = "Active Recall"

func IsAllowedLearningMethod(method string) bool {
	for _, m := range AllowedLearningMethods {
		if m == method {
			return true
		}
	}
	return false
}
