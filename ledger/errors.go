package ledger

import "errors"

// Validation failures on caller-supplied input. None are retryable; callers
// surface them inline. The package never substitutes a default value that
// could mask a configuration error.
var (
	// ErrInvalidRange reports a window whose start is after its end.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrUnknownCategory reports a budget query for a category with no
	// configured limit.
	ErrUnknownCategory = errors.New("no budget configured for category")
	// ErrInvalidGoal reports a goal with a non-positive target.
	ErrInvalidGoal = errors.New("goal target must be positive")
)
