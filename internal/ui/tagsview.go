package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chromatic-tools/datapoint-cli/internal/api"
	"github.com/chromatic-tools/datapoint-cli/internal/ui/components"
)

// --- Messages ---

type tagIndexLoadedMsg struct{ items []api.Tag }

// --- Tags Model ---

// TagsModel is the read-only tag index: every tag known to the store with
// its usage count.
type TagsModel struct {
	client   *api.Client
	list     *components.List
	items    []api.Tag
	allItems []api.Tag
	loading  bool
	filter   string

	width  int
	height int
}

// NewTagsModel builds the tag index UI model.
func NewTagsModel(client *api.Client) TagsModel {
	return TagsModel{
		client: client,
		list:   components.NewList(14),
	}
}

func (m TagsModel) Init() tea.Cmd {
	m.loading = true
	m.filter = ""
	return m.loadTags
}

func (m TagsModel) Update(msg tea.Msg) (TagsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tagIndexLoadedMsg:
		m.loading = false
		m.allItems = msg.items
		m.applyFilter()
		return m, nil
	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case isDown(msg):
			m.list.Down()
		case isUp(msg):
			m.list.Up()
		case isKey(msg, "backspace", "delete"):
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
		case isKey(msg, "ctrl+u"), isBack(msg):
			if m.filter != "" {
				m.filter = ""
				m.applyFilter()
			}
		default:
			if len(msg.String()) == 1 {
				m.filter += msg.String()
				m.applyFilter()
			}
		}
	}
	return m, nil
}

func (m TagsModel) loadTags() tea.Msg {
	items, err := m.client.ListTags()
	if err != nil {
		return errMsg{err}
	}
	return tagIndexLoadedMsg{items: items}
}

func (m *TagsModel) applyFilter() {
	query := strings.TrimSpace(strings.ToLower(m.filter))
	if query == "" {
		m.items = append([]api.Tag{}, m.allItems...)
	} else {
		filtered := make([]api.Tag, 0)
		for _, item := range m.allItems {
			if strings.Contains(strings.ToLower(item.Name), query) {
				filtered = append(filtered, item)
			}
		}
		m.items = filtered
	}
	labels := make([]string, 0, len(m.items))
	for _, item := range m.items {
		labels = append(labels, components.SanitizeOneLine(item.Name))
	}
	m.list.SetItems(labels)
}

func (m TagsModel) View() string {
	if m.loading {
		return components.CenterLine("Loading tags...", m.width)
	}
	if len(m.items) == 0 {
		return components.Box(MutedStyle.Render("No tags yet."), m.width)
	}

	cols := []components.TableColumn{
		{Header: "Tag", Width: 32, Align: lipgloss.Left},
		{Header: "Datapoints", Width: 12, Align: lipgloss.Right},
	}
	start, end := m.list.Window()
	rows := make([][]string, 0, end-start)
	for _, item := range m.items[start:end] {
		rows = append(rows, []string{item.Name, fmt.Sprintf("%d", item.Count)})
	}
	activeRel := m.list.Selected() - start
	table := components.TableGridWithActiveRow(cols, rows, components.BoxContentWidth(m.width), activeRel)

	countLine := MutedStyle.Render(fmt.Sprintf("%d tags", len(m.items)))
	if strings.TrimSpace(m.filter) != "" {
		countLine = MutedStyle.Render(fmt.Sprintf("%d tags · filter: %s", len(m.items), strings.TrimSpace(m.filter)))
	}
	return components.TitledBox("Tags", countLine+"\n\n"+table, m.width)
}
