package ledger

import (
	"encoding/json"
	"fmt"
)

// Goal is a named savings target. TargetMinor must be positive; SavedMinor is
// a non-negative running contribution total maintained by the caller.
type Goal struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	SavedMinor  int64  `json:"saved_minor"`
	TargetMinor int64  `json:"target_minor"`
}

// GoalStatus classifies goal progress.
type GoalStatus int

const (
	GoalInProgress GoalStatus = iota
	GoalComplete
)

func (s GoalStatus) String() string {
	switch s {
	case GoalInProgress:
		return "inProgress"
	case GoalComplete:
		return "complete"
	}
	return "unknown"
}

func (s GoalStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// GoalReport is the derived progress snapshot for one goal. RemainingMinor is
// clamped at zero: a goal funded past its target stays complete with nothing
// left to go.
type GoalReport struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	SavedMinor     int64      `json:"saved_minor"`
	TargetMinor    int64      `json:"target_minor"`
	RemainingMinor int64      `json:"remaining_minor"`
	PercentSaved   int64      `json:"percent_saved"`
	Status         GoalStatus `json:"status"`
}

// EvaluateGoal computes progress for a single goal, using the same rounding
// rule as the budget tracker. Returns ErrInvalidGoal for a non-positive
// target rather than dividing by zero.
func EvaluateGoal(g Goal) (GoalReport, error) {
	if g.TargetMinor <= 0 {
		return GoalReport{}, fmt.Errorf("goal %q target %d: %w", g.Name, g.TargetMinor, ErrInvalidGoal)
	}

	percent := Percent(g.SavedMinor, g.TargetMinor)

	status := GoalInProgress
	if percent >= 100 {
		status = GoalComplete
	}

	remaining := g.TargetMinor - g.SavedMinor
	if remaining < 0 {
		remaining = 0
	}

	return GoalReport{
		ID:             g.ID,
		Name:           g.Name,
		SavedMinor:     g.SavedMinor,
		TargetMinor:    g.TargetMinor,
		RemainingMinor: remaining,
		PercentSaved:   percent,
		Status:         status,
	}, nil
}

// EvaluateGoals evaluates each goal, skipping none: an invalid goal aborts the
// whole evaluation so a configuration error cannot be silently dropped.
func EvaluateGoals(goals []Goal) ([]GoalReport, error) {
	reports := make([]GoalReport, 0, len(goals))
	for _, g := range goals {
		r, err := EvaluateGoal(g)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
