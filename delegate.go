package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m model) newEntryDelegate(keys *entryDelegateKeyMap) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)})

	d.UpdateFunc = func(msg tea.Msg, listModel *list.Model) tea.Cmd {
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, keys.deleteEntry) {
				return deleteSelectedEntry(listModel)
			}
		}

		return nil
	}

	help := []key.Binding{keys.deleteEntry}

	d.ShortHelpFunc = func() []key.Binding {
		return help
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}

	return d
}

// deleteSelectedEntry emits the delete message for the highlighted entry. The
// snapshot mutation and report recompute happen in the message handler.
func deleteSelectedEntry(listModel *list.Model) tea.Cmd {
	item, ok := listModel.SelectedItem().(entryItem)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return entryDeletedMsg{id: item.entry.ID, name: item.entry.Name}
	}
}

type entryDelegateKeyMap struct {
	deleteEntry key.Binding
}

func (d entryDelegateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		d.deleteEntry,
	}
}

func (d entryDelegateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			d.deleteEntry,
		},
	}
}

func newEntryDelegateKeyMap() *entryDelegateKeyMap {
	return &entryDelegateKeyMap{
		deleteEntry: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete entry"),
		),
	}
}
