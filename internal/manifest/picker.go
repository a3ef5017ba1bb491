package manifest

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var pickerTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

type pickerItem string

func (i pickerItem) Title() string       { return string(i) }
func (i pickerItem) Description() string { return "" }
func (i pickerItem) FilterValue() string { return string(i) }

type pickerModel struct {
	list   list.Model
	choice string
	done   bool
}

func newPickerModel(candidates []string) pickerModel {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = pickerItem(c)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select package.json"
	l.SetFilteringEnabled(true)
	l.SetShowStatusBar(false)
	l.Styles.Title = pickerTitleStyle

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = string(item)
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

// Pick resolves manifest ambiguity interactively: zero candidates is an
// error, one is returned as-is, more open a filtered picker.
func Pick(candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("no %s found", FileName)
	case 1:
		return candidates[0], nil
	}

	program := tea.NewProgram(newPickerModel(candidates), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("manifest picker failed: %w", err)
	}

	chosen := final.(pickerModel).choice
	if chosen == "" {
		return "", fmt.Errorf("no %s selected", FileName)
	}

	return chosen, nil
}
