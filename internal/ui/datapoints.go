package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chromatic-tools/datapoint-cli/internal/api"
	"github.com/chromatic-tools/datapoint-cli/internal/ui/components"
)

// --- Messages ---

type datapointsLoadedMsg struct{ items []api.Datapoint }
type datapointRefreshedMsg struct{ item *api.Datapoint }

type datapointsView int

const (
	datapointsViewList datapointsView = iota
	datapointsViewDetail
)

// --- Datapoints Model ---

type DatapointsModel struct {
	client   *api.Client
	list     *components.List
	items    []api.Datapoint
	allItems []api.Datapoint
	loading  bool
	view     datapointsView

	detail    *api.Datapoint
	editor    TagEditor
	tagErr    string
	searchBuf string

	width  int
	height int
}

// NewDatapointsModel builds the datapoints UI model.
func NewDatapointsModel(client *api.Client) DatapointsModel {
	return DatapointsModel{
		client: client,
		list:   components.NewList(12),
		view:   datapointsViewList,
	}
}

func (m DatapointsModel) Init() tea.Cmd {
	m.loading = true
	m.view = datapointsViewList
	m.detail = nil
	m.searchBuf = ""
	m.tagErr = ""
	return m.loadDatapoints
}

func (m DatapointsModel) Update(msg tea.Msg) (DatapointsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case datapointsLoadedMsg:
		m.loading = false
		m.allItems = msg.items
		m.applySearch()
		return m, nil
	case datapointRefreshedMsg:
		if m.detail != nil && msg.item != nil && msg.item.ID == m.detail.ID {
			m.detail = msg.item
			m.editor.Refresh(msg.item.TagNames())
		}
		return m, nil
	case tagOpDoneMsg:
		m.editor.FinishOp(msg)
		if msg.err != nil {
			m.tagErr = fmt.Sprintf("%s failed: %v", msg.op, msg.err)
		}
		return m, nil
	case errMsg:
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case datapointsViewDetail:
			return m.handleDetailKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}
	return m, nil
}

func (m DatapointsModel) View() string {
	switch m.view {
	case datapointsViewDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

// --- Loading ---

func (m DatapointsModel) loadDatapoints() tea.Msg {
	items, err := m.client.QueryDatapoints(nil)
	if err != nil {
		return errMsg{err}
	}
	return datapointsLoadedMsg{items: items}
}

func (m DatapointsModel) refreshDetail() tea.Cmd {
	if m.detail == nil {
		return nil
	}
	id := m.detail.ID
	return func() tea.Msg {
		item, err := m.client.GetDatapoint(id)
		if err != nil {
			return errMsg{err}
		}
		return datapointRefreshedMsg{item: item}
	}
}

func (m *DatapointsModel) applySearch() {
	query := strings.TrimSpace(strings.ToLower(m.searchBuf))
	if query == "" {
		m.items = append([]api.Datapoint{}, m.allItems...)
	} else {
		filtered := make([]api.Datapoint, 0)
		for _, item := range m.allItems {
			name := strings.ToLower(item.Name)
			if strings.Contains(name, query) || matchesTag(item, query) {
				filtered = append(filtered, item)
			}
		}
		m.items = filtered
	}
	labels := make([]string, 0, len(m.items))
	for _, item := range m.items {
		name := components.SanitizeOneLine(item.Name)
		label := name
		if n := len(item.Tags); n > 0 {
			label = fmt.Sprintf("%s · %d tags", name, n)
		}
		labels = append(labels, label)
	}
	if m.list != nil {
		m.list.SetItems(labels)
	}
}

func matchesTag(dp api.Datapoint, query string) bool {
	for _, name := range dp.TagNames() {
		if strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}

// --- List ---

func (m DatapointsModel) handleListKeys(msg tea.KeyMsg) (DatapointsModel, tea.Cmd) {
	switch {
	case isDown(msg):
		m.list.Down()
	case isUp(msg):
		m.list.Up()
	case isEnter(msg):
		if idx := m.list.Selected(); idx < len(m.items) {
			m.detail = &m.items[idx]
			m.editor = NewTagEditor(m.client, m.detail.ID, m.detail.TagNames())
			m.tagErr = ""
			m.view = datapointsViewDetail
		}
	case isKey(msg, "backspace", "delete"):
		if len(m.searchBuf) > 0 {
			m.searchBuf = m.searchBuf[:len(m.searchBuf)-1]
			m.applySearch()
		}
	case isKey(msg, "ctrl+u"), isBack(msg):
		if m.searchBuf != "" {
			m.searchBuf = ""
			m.applySearch()
		}
	default:
		if len(msg.String()) == 1 {
			m.searchBuf += msg.String()
			m.applySearch()
		}
	}
	return m, nil
}

func (m DatapointsModel) renderList() string {
	if m.loading {
		return components.CenterLine("Loading datapoints...", m.width)
	}
	if len(m.items) == 0 {
		content := MutedStyle.Render("No datapoints found.")
		return components.Box(content, m.width)
	}
	var rows strings.Builder
	visible := m.list.Visible()
	contentWidth := components.BoxContentWidth(m.width)
	maxLabelWidth := contentWidth - 4
	for i, label := range visible {
		if maxLabelWidth > 0 {
			label = components.ClampTextWidth(label, maxLabelWidth)
		}
		absIdx := m.list.RelToAbs(i)
		if m.list.IsSelected(absIdx) {
			rows.WriteString(SelectedStyle.Render("  > " + label))
		} else {
			rows.WriteString(NormalStyle.Render("    " + label))
		}
		if i < len(visible)-1 {
			rows.WriteString("\n")
		}
	}
	countLine := fmt.Sprintf("%d total", len(m.items))
	if strings.TrimSpace(m.searchBuf) != "" {
		countLine = fmt.Sprintf("%s · search: %s", countLine, strings.TrimSpace(m.searchBuf))
	}
	countLine = MutedStyle.Render(countLine)
	content := countLine + "\n\n" + rows.String()
	return components.TitledBox("Datapoints", content, m.width)
}

func (m DatapointsModel) hasActiveEdit() bool {
	return m.editor.Editing()
}

// --- Detail ---

func (m DatapointsModel) handleDetailKeys(msg tea.KeyMsg) (DatapointsModel, tea.Cmd) {
	if m.editor.Editing() {
		cmd, _ := m.editor.HandleKey(msg)
		return m, cmd
	}
	switch {
	case isBack(msg):
		m.view = datapointsViewList
		m.detail = nil
	case isKey(msg, "t"), isEnter(msg):
		m.tagErr = ""
		m.editor.BeginEdit()
	case isKey(msg, "r"):
		return m, m.refreshDetail()
	}
	return m, nil
}

func (m DatapointsModel) renderDetail() string {
	if m.detail == nil {
		return m.renderList()
	}
	dp := m.detail
	rows := []components.TableRow{
		{Label: "Name", Value: dp.Name},
		{Label: "ID", Value: dp.ID},
	}
	if dp.Dataset != "" {
		rows = append(rows, components.TableRow{Label: "Dataset", Value: dp.Dataset})
	}
	if !dp.CreatedAt.IsZero() {
		rows = append(rows, components.TableRow{Label: "Created", Value: dp.CreatedAt.Format("2006-01-02 15:04")})
	}
	if !dp.UpdatedAt.IsZero() {
		rows = append(rows, components.TableRow{Label: "Updated", Value: dp.UpdatedAt.Format("2006-01-02 15:04")})
	}

	sections := []string{components.Table("Datapoint", rows, m.width)}

	tagRow := MutedStyle.Render("Tags:") + "\n" + m.editor.Render(m.width, true)
	if m.tagErr != "" {
		tagRow += "\n" + ErrorStyle.Render(m.tagErr)
	}
	sections = append(sections, components.Indent(tagRow, 1))

	if len(dp.Metadata) > 0 {
		sections = append(sections, components.MetadataTable(map[string]any(dp.Metadata), m.width))
	}
	return strings.Join(sections, "\n\n")
}
