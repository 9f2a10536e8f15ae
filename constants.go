package main

// Period types
const (
	monthlyPeriodType = "month"
	annualPeriodType  = "year"
)

// Session states
type sessionState int

const (
	dashboardState sessionState = iota
	entriesState
	budgetsState
	goalsState
	analysisState
	addEntryState
	configState
	loading
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case dashboardState:
		return "dashboard"
	case entriesState:
		return "transactions"
	case budgetsState:
		return "budgets"
	case goalsState:
		return "goals"
	case analysisState:
		return "analysis"
	case addEntryState:
		return "add entry"
	case configState:
		return "settings"
	case loading:
		return "loading"
	case errorState:
		return "error"
	}

	return "unknown"
}
