package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// BrowserAction is what the user asked to do with the selected record.
type BrowserAction string

const (
	ActionNone        BrowserAction = ""
	ActionShowDetails BrowserAction = "details"
	ActionProgress    BrowserAction = "progress"
	ActionRemove      BrowserAction = "remove"
)

// BrowserResult holds the outcome of a browser session.
type BrowserResult struct {
	Action BrowserAction
	Record *model.BookRecord
}

// statusFilters is the cycle order for the status filter key.
var statusFilters = []model.Status{"", model.StatusToRead, model.StatusInProgress, model.StatusFinished}

// recordDelegate renders rows through renderRecordItem with the
// session's styles.
type recordDelegate struct {
	styles Styles
}

func (d recordDelegate) Height() int                               { return 1 }
func (d recordDelegate) Spacing() int                              { return 0 }
func (d recordDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	renderRecordItem(w, m, index, item, d.styles)
}

// browserModel holds the library browser state.
type browserModel struct {
	list      list.Model
	records   []model.BookRecord
	styles    Styles
	keys      browserKeys
	statusIdx int
	quitting  bool
	action    BrowserAction
	selected  *model.BookRecord
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Let the list's own filter input swallow keys while active.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.details):
			if item, ok := m.list.SelectedItem().(RecordItem); ok {
				m.action = ActionShowDetails
				m.selected = &item.Record
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.progress):
			if item, ok := m.list.SelectedItem().(RecordItem); ok {
				m.action = ActionProgress
				m.selected = &item.Record
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.remove):
			if item, ok := m.list.SelectedItem().(RecordItem); ok {
				m.action = ActionRemove
				m.selected = &item.Record
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.status):
			m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
			cmd := m.list.SetItems(m.visibleItems())
			m.list.Title = m.title()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		h, v := m.styles.Border.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	return m.styles.Border.Render(m.list.View())
}

func (m browserModel) visibleItems() []list.Item {
	status := statusFilters[m.statusIdx]
	var items []list.Item
	for _, r := range m.records {
		if status != "" && r.Status != status {
			continue
		}
		items = append(items, RecordItem{Record: r})
	}
	return items
}

func (m browserModel) title() string {
	if status := statusFilters[m.statusIdx]; status != "" {
		return "My Library · " + string(status)
	}
	return "My Library"
}

// RunLibraryBrowser launches the interactive library browser over the
// given records and reports what the user chose to do.
func RunLibraryBrowser(records []model.BookRecord, styles Styles) (*BrowserResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no books to display")
	}

	m := browserModel{
		records: records,
		styles:  styles,
		keys:    newBrowserKeys(),
	}

	l := list.New(m.visibleItems(), recordDelegate{styles: styles}, 0, 0)
	l.Title = m.title()
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Header
	l.Styles.PaginationStyle = styles.Subtle
	l.Styles.HelpStyle = styles.Subtle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{m.keys.progress, m.keys.status}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{m.keys.details, m.keys.progress, m.keys.remove, m.keys.status}
	}
	m.list = l

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running library browser: %w", err)
	}

	if fm, ok := finalModel.(browserModel); ok {
		return &BrowserResult{Action: fm.action, Record: fm.selected}, nil
	}
	return &BrowserResult{Action: ActionNone}, nil
}
