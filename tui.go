package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"fintrack/config"
	"fintrack/dashboard"
	"fintrack/goals"
	"fintrack/insight"
)

type model struct {
	// loadingSpinner is a spinner model for the initial loading state
	loadingSpinner spinner.Model

	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	dashboard  dashboard.Model
	goalsView  goals.Model
	configView config.Model

	// entries is a bubbletea list model of ledger entries for the period
	entries        list.Model
	entryListKeys  *entryListKeyMap
	budgets        list.Model
	budgetDelegate list.DefaultDelegate

	// askInput drives the deterministic query responder in the analysis view
	askInput    textinput.Model
	askResponse string

	addEntryForm *huh.Form

	// sessionState is the current state of the session
	sessionState         sessionState
	previousSessionState sessionState
	loadingState         loadingState
	errorMsg             string

	snapshot *Snapshot
	rpt      reports

	// asOf is the explicit reference date, resolved once at startup
	asOf time.Time
	// currentPeriod is the date selecting the evaluation window
	currentPeriod time.Time
	periodType    string
	period        Period

	cfg config.Config
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSnapshot,
		m.loadingSpinner.Tick,
	)
}

func (m model) checkIfLoading() sessionState {
	if ok, _ := m.loadingState.allLoaded(); !ok {
		return loading
	}

	if m.previousSessionState == loading {
		return dashboardState
	}

	return m.previousSessionState
}

// rootAction builds the TUI model and runs the program. It is the root
// command's action when no subcommand is given.
func rootAction(_ context.Context, cfg config.Config, asOf time.Time, periodType string) error {
	theme := newTheme(cfg.Colors)
	appStyles := createStyles(theme)

	askInput := textinput.New()
	askInput.Placeholder = "Ask about your money..."
	askInput.CharLimit = 120

	m := model{
		keys:           initializeKeyMap(),
		help:           createHelpModel(theme),
		theme:          theme,
		styles:         appStyles,
		sessionState:   loading,
		loadingState:   newLoadingState("snapshot", "reports"),
		loadingSpinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		dashboard:      dashboard.New(dashboard.Colors{Income: string(theme.Income), Expense: string(theme.Expense), Muted: string(theme.Muted)}),
		goalsView:      goals.New(goals.Colors{Primary: string(theme.Primary)}),
		configView:     config.New(),
		askInput:       askInput,
		asOf:           asOf,
		currentPeriod:  asOf,
		periodType:     periodType,
		cfg:            cfg,
		entryListKeys:  newEntryListKeyMap(),
	}

	m.configView.SetConfig(cfg)

	delegate := m.newEntryDelegate(newEntryDelegateKeyMap())
	entryList := list.New([]list.Item{}, delegate, 0, 0)
	entryList.SetShowTitle(false)
	entryList.StatusMessageLifetime = 3 * time.Second
	entryList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			m.entryListKeys.dashboard,
			m.entryListKeys.newEntry,
		}
	}
	m.entries = entryList

	m.budgetDelegate = list.NewDefaultDelegate()
	m.budgets = createBudgetList(m.budgetDelegate)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// insightConfig returns the rule margins for the engine. Defaults for now;
// kept behind one function so a future config knob lands in one place.
func insightConfig() insight.Config {
	return insight.DefaultConfig()
}
