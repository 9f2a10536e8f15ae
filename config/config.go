// Package config holds the application configuration structure and a small
// bubbletea view that displays the effective settings.
package config

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// Data is the path to a JSON snapshot file; empty means sample data
	Data string `toml:"data"`
	// AsOf overrides the reference date (YYYY-MM-DD); empty means today
	AsOf string `toml:"as_of"`
	// Period selects the evaluation window type: month or year
	Period string `toml:"period"`
	// Colors configures the theme
	Colors Colors `toml:"colors"`
}

// Colors holds the configurable theme colors. Empty values fall back to the
// built-in defaults.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	Warning       string `toml:"warning"`
	Muted         string `toml:"muted"`
	Income        string `toml:"income"`
	Expense       string `toml:"expense"`
	Border        string `toml:"border"`
	Background    string `toml:"background"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// Model represents the settings view model.
type Model struct {
	configTable table.Model
}

// New creates a new settings view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the settings table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the settings table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Data",
			orDefault(config.Data, "(built-in sample)"),
			"JSON snapshot file with entries, limits and goals",
		},
		{
			"As Of",
			orDefault(config.AsOf, "(today)"),
			"Reference date for metrics and the rolling window",
		},
		{
			"Period",
			orDefault(config.Period, "month"),
			"Evaluation window type: month or year",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the settings view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the settings view.
func (m Model) View() string {
	return m.configTable.View()
}
