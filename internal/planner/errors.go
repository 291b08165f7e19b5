package planner

import "errors"

// Failure kinds callers branch on with errors.Is. Input-precondition
// errors are raised before any model call; ErrGenerationFailed marks an
// unusable response batch; ErrNoValidGuides marks a week-elaboration
// batch with zero structurally valid guides.
var (
	ErrNoModules        = errors.New("no modules defined")
	ErrNoTimeSlots      = errors.New("no time slots defined")
	ErrMissingAPIKey    = errors.New("missing model API credential")
	ErrGenerationFailed = errors.New("generation produced no usable sessions")
	ErrNoValidGuides    = errors.New("no valid execution guides in batch")
)
