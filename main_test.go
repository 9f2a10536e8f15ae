package main

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func TestSessionStateNavigation(t *testing.T) {
	tests := []struct {
		name          string
		key           rune
		initialState  sessionState
		expectedState sessionState
	}{
		{name: "to transactions", key: 't', initialState: dashboardState, expectedState: entriesState},
		{name: "to budgets", key: 'b', initialState: dashboardState, expectedState: budgetsState},
		{name: "to goals", key: 'g', initialState: dashboardState, expectedState: goalsState},
		{name: "to analysis", key: 'a', initialState: dashboardState, expectedState: analysisState},
		{name: "to settings", key: 'c', initialState: dashboardState, expectedState: configState},
		{name: "back to dashboard", key: 'o', initialState: budgetsState, expectedState: dashboardState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model{
				keys:                 initializeKeyMap(),
				sessionState:         tt.initialState,
				previousSessionState: tt.initialState,
				askInput:             textinput.New(),
			}

			resultModel, cmd := handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}}, &m)
			result := resultModel.(*model)

			be.Equal(t, tt.expectedState, result.sessionState)
			be.Equal(t, tt.initialState, result.previousSessionState)
			be.Nonzero(t, cmd)
		})
	}
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	m := model{
		keys:                 initializeKeyMap(),
		sessionState:         loading,
		previousSessionState: dashboardState,
		askInput:             textinput.New(),
	}

	resultModel, cmd := handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, &m)
	result := resultModel.(*model)

	be.Equal(t, loading, result.sessionState)
	be.Equal(t, true, cmd == nil)
}

func TestQuitSuppressedWhileTyping(t *testing.T) {
	askInput := textinput.New()
	askInput.Focus()

	m := model{
		keys:         initializeKeyMap(),
		sessionState: analysisState,
		askInput:     askInput,
	}

	resultModel, cmd := handleKeyPress(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, &m)
	result := resultModel.(*model)

	be.Equal(t, analysisState, result.sessionState)
	be.Equal(t, true, cmd == nil)
}

func TestHandleEscape(t *testing.T) {
	tests := []struct {
		name          string
		initialState  sessionState
		expectedState sessionState
		addEntryForm  *huh.Form
		expectedForm  huh.FormState
	}{
		{
			name:          "from add entry state aborts the form",
			initialState:  addEntryState,
			expectedState: entriesState,
			addEntryForm:  &huh.Form{State: huh.StateNormal},
			expectedForm:  huh.StateAborted,
		},
		{
			name:          "from transactions state",
			initialState:  entriesState,
			expectedState: dashboardState,
		},
		{
			name:          "from goals state",
			initialState:  goalsState,
			expectedState: dashboardState,
		},
		{
			name:          "from dashboard state",
			initialState:  dashboardState,
			expectedState: dashboardState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &model{
				sessionState:         tt.initialState,
				previousSessionState: tt.initialState,
				addEntryForm:         tt.addEntryForm,
				askInput:             textinput.New(),
			}

			resultModel, _ := handleEscape(m)
			result := resultModel.(*model)

			be.Equal(t, tt.expectedState, result.sessionState)
			if tt.addEntryForm != nil {
				be.Equal(t, tt.expectedForm, result.addEntryForm.State)
			}
		})
	}
}

func TestHandleEscapeBlursAskInput(t *testing.T) {
	askInput := textinput.New()
	askInput.Focus()

	m := &model{
		sessionState: analysisState,
		askInput:     askInput,
	}

	resultModel, _ := handleEscape(m)
	result := resultModel.(*model)

	// Escape only releases the input; a second escape leaves the view.
	be.Equal(t, analysisState, result.sessionState)
	be.False(t, result.askInput.Focused())

	resultModel, _ = handleEscape(result)
	result = resultModel.(*model)
	be.Equal(t, dashboardState, result.sessionState)
}

func TestAdvancePeriod(t *testing.T) {
	tests := []struct {
		name         string
		periodType   string
		initialDate  time.Time
		expectedDate time.Time
	}{
		{
			name:         "advance monthly period",
			periodType:   monthlyPeriodType,
			initialDate:  time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "advance annual period",
			periodType:   annualPeriodType,
			initialDate:  time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2027, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &model{
				periodType:           tt.periodType,
				currentPeriod:        tt.initialDate,
				sessionState:         entriesState,
				previousSessionState: entriesState,
				loadingState:         newLoadingState("snapshot", "reports"),
			}
			m.loadingState.set("snapshot")
			m.loadingState.set("reports")

			resultModel, cmd := advancePeriod(m)
			result := resultModel.(*model)

			be.Equal(t, tt.expectedDate, result.currentPeriod)
			be.Equal(t, loading, result.sessionState)
			be.Equal(t, entriesState, result.previousSessionState)
			be.False(t, result.loadingState["reports"])
			be.Nonzero(t, cmd)
		})
	}
}

func TestRetreatPeriod(t *testing.T) {
	tests := []struct {
		name         string
		periodType   string
		initialDate  time.Time
		expectedDate time.Time
	}{
		{
			name:         "retreat monthly period",
			periodType:   monthlyPeriodType,
			initialDate:  time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "retreat annual period",
			periodType:   annualPeriodType,
			initialDate:  time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &model{
				periodType:           tt.periodType,
				currentPeriod:        tt.initialDate,
				sessionState:         dashboardState,
				previousSessionState: dashboardState,
				loadingState:         newLoadingState("reports"),
			}

			resultModel, cmd := retreatPeriod(m)
			result := resultModel.(*model)

			be.Equal(t, tt.expectedDate, result.currentPeriod)
			be.Equal(t, loading, result.sessionState)
			be.Nonzero(t, cmd)
		})
	}
}

func TestSwitchPeriodType(t *testing.T) {
	m := &model{
		periodType:   monthlyPeriodType,
		sessionState: dashboardState,
		loadingState: newLoadingState("reports"),
	}

	resultModel, _ := switchPeriodType(m)
	result := resultModel.(*model)
	be.Equal(t, annualPeriodType, result.periodType)

	result.sessionState = dashboardState
	resultModel, _ = switchPeriodType(result)
	result = resultModel.(*model)
	be.Equal(t, monthlyPeriodType, result.periodType)
}

func TestCheckIfLoading(t *testing.T) {
	m := model{
		previousSessionState: loading,
		loadingState:         newLoadingState("snapshot", "reports"),
	}

	be.Equal(t, loading, m.checkIfLoading())

	m.loadingState.set("snapshot")
	m.loadingState.set("reports")

	// First completed load lands on the dashboard.
	be.Equal(t, dashboardState, m.checkIfLoading())

	// Subsequent reloads return to wherever the user was.
	m.previousSessionState = goalsState
	be.Equal(t, goalsState, m.checkIfLoading())
}
