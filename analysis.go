package main

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"fintrack/insight"
	"fintrack/ledger"
)

var suggestedPrompts = []string{
	"Can I afford a $500 purchase?",
	"Where am I overspending?",
	"How can I save faster?",
}

func updateAnalysis(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.askInput.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			answer, err := insight.Respond(m.askInput.Value(), m.rpt.metrics)
			if err != nil {
				log.Debug("responder rejected query", "error", err)
				m.askResponse = "Ask me something first."
				return m, nil
			}
			m.askResponse = answer
			m.askInput.SetValue("")
			return m, nil
		case tea.KeyEsc:
			m.askInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.askInput, cmd = m.askInput.Update(msg)
	return m, cmd
}

func analysisView(m model) string {
	var b strings.Builder

	b.WriteString(analysisSnapshotCards(m))
	b.WriteString("\n")
	b.WriteString(insightCards(m))
	b.WriteString("\n")
	b.WriteString(askBox(m))

	return b.String()
}

// analysisSnapshotCards renders the period-over-period snapshot row.
func analysisSnapshotCards(m model) string {
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)

	summary := m.rpt.current.Summary
	cards := []string{
		card.Render(fmt.Sprintf("Income\n%s", money.New(summary.IncomeMinor, money.USD).Display())),
		card.Render(fmt.Sprintf("Spent\n%s", money.New(summary.ExpenseMinor, money.USD).Display())),
		card.Render(fmt.Sprintf("Net\n%s", money.New(summary.NetMinor, money.USD).Display())),
	}

	if rate, ok := summary.SavingsRatePercent(); ok {
		cards = append(cards, card.Render(fmt.Sprintf("Savings Rate\n%d%%", rate)))
	}

	if m.rpt.prior != nil {
		delta, label := spendDelta(summary, m.rpt.prior.Summary)
		cards = append(cards, card.Render(fmt.Sprintf("vs Last Period\n%s %s spent",
			money.New(delta, money.USD).Display(), label)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// insightCards renders the engine's ranked insights, most severe first.
func insightCards(m model) string {
	if len(m.rpt.insights) == 0 {
		return m.styles.mutedStyle.Render("No insights for this period.")
	}

	var cards []string
	for _, in := range m.rpt.insights {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.insightBorder(in.Kind)).
			Padding(0, 1)

		body := fmt.Sprintf("%s\n%s", lipgloss.NewStyle().Bold(true).Render(in.Title), in.Body)
		if in.SuggestedAction != "" {
			body += "\n" + m.styles.mutedStyle.Render("→ "+in.SuggestedAction)
		}
		cards = append(cards, style.Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m model) insightBorder(kind insight.Kind) lipgloss.Color {
	switch kind {
	case insight.KindCaution:
		return m.theme.Error
	case insight.KindOptimization:
		return m.theme.Warning
	default:
		return m.theme.Success
	}
}

// askBox renders the query input, the latest answer, and the suggested
// prompts.
func askBox(m model) string {
	var b strings.Builder

	b.WriteString(m.askInput.View())
	b.WriteString("\n")

	if m.askResponse != "" {
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Border).
			Padding(0, 1).
			Render(m.askResponse))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.mutedStyle.Render("Try: " + strings.Join(suggestedPrompts, " | ")))

	return b.String()
}

// spendDelta returns the absolute spend difference against the prior period
// and whether it went up or down.
func spendDelta(current, prior ledger.Summary) (int64, string) {
	delta := current.ExpenseMinor - prior.ExpenseMinor
	if delta > 0 {
		return delta, "more"
	}
	return -delta, "less"
}
