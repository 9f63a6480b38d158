package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/clv/internal/vocab"
)

type entryItem struct {
	entry vocab.Entry
}

func (i entryItem) Title() string { return i.entry.Word + " (" + i.entry.Lang + ")" }

func (i entryItem) Description() string {
	for _, d := range i.entry.Definitions {
		if d != "" {
			return d
		}
	}
	return ""
}

func (i entryItem) FilterValue() string { return i.entry.Word }

// BrowseModel is a filterable list of entries. Enter picks the highlighted
// entry and quits; Esc quits without a pick.
type BrowseModel struct {
	list     list.Model
	selected *vocab.Entry
}

func NewBrowseModel(entries []vocab.Entry) BrowseModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Green).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Green).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(DarkGreen)

	l := list.New(items, d, 60, 20)
	l.Title = "Vocabulary"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(Green).Bold(true).MarginLeft(2)

	return BrowseModel{list: l}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if it, ok := m.list.SelectedItem().(entryItem); ok {
				e := it.entry
				m.selected = &e
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowseModel) View() string {
	return m.list.View()
}

// Selected returns the picked entry, if any.
func (m BrowseModel) Selected() (vocab.Entry, bool) {
	if m.selected == nil {
		return vocab.Entry{}, false
	}
	return *m.selected, true
}
