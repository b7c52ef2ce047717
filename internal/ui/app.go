package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chromatic-tools/datapoint-cli/internal/api"
	"github.com/chromatic-tools/datapoint-cli/internal/config"
	"github.com/chromatic-tools/datapoint-cli/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabDatapoints = 0
	tabTags       = 1
	tabSettings   = 2
	tabCount      = 3
)

var tabNames = []string{"Datapoints", "Tags", "Settings"}

// --- Messages ---

type errMsg struct{ err error }

// --- App Model ---

// App is the root TUI model that routes between tabs.
type App struct {
	client *api.Client
	config *config.Config
	tab    int
	tabNav bool
	width  int
	height int

	err         string
	helpOpen    bool
	quitConfirm bool

	datapoints DatapointsModel
	tags       TagsModel
	settings   SettingsModel
}

// NewApp creates the root application model.
func NewApp(client *api.Client, cfg *config.Config) App {
	return App{
		client:     client,
		config:     cfg,
		tab:        tabDatapoints,
		tabNav:     true,
		datapoints: NewDatapointsModel(client),
		tags:       NewTagsModel(client),
		settings:   NewSettingsModel(client, cfg),
	}
}

func (a App) Init() tea.Cmd {
	return a.datapoints.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.datapoints.width = msg.Width
		a.datapoints.height = msg.Height
		a.tags.width = msg.Width
		a.tags.height = msg.Height
		a.settings.width = msg.Width
		a.settings.height = msg.Height
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		var cmd tea.Cmd
		a.datapoints, cmd = a.datapoints.Update(msg)
		return a, cmd

	case tagOpDoneMsg:
		// Tag effects are fire-and-forget; route their completions to the
		// datapoints model even if the user has moved to another tab.
		var cmd tea.Cmd
		a.datapoints, cmd = a.datapoints.Update(msg)
		if msg.err != nil {
			a.err = fmt.Sprintf("%s failed: %v", msg.op, msg.err)
		}
		return a, cmd

	case tea.KeyMsg:
		if a.quitConfirm {
			switch {
			case isKey(msg, "y"):
				return a, tea.Quit
			case isKey(msg, "n"), isBack(msg):
				a.quitConfirm = false
			}
			return a, nil
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if a.err != "" {
			a.err = ""
		}

		// ctrl+c always reaches the quit path, even during an edit.
		if isKey(msg, "ctrl+c") {
			if a.hasUnsaved() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}

		// While a tag edit is active, every other key belongs to the editor.
		if a.tab == tabDatapoints && a.datapoints.hasActiveEdit() {
			break
		}

		// Global keys
		if isKey(msg, "?") {
			a.helpOpen = true
			return a, nil
		}
		if isQuit(msg) {
			if a.hasUnsaved() {
				a.quitConfirm = true
				return a, nil
			}
			return a, tea.Quit
		}

		if idx, ok := tabIndexForKey(msg.String()); ok {
			return a.switchTab(idx)
		}

		// Arrow tab navigation until user enters content with Down
		if a.tabNav {
			if isKey(msg, "left") {
				return a.switchTab((a.tab - 1 + tabCount) % tabCount)
			}
			if isKey(msg, "right") {
				return a.switchTab((a.tab + 1) % tabCount)
			}
			if isDown(msg) {
				a.tabNav = false
				return a, nil
			}

			// Any other key exits tab nav so the active tab can handle it.
			a.tabNav = false
		} else {
			if isUp(msg) && a.canExitToTabNav() {
				a.tabNav = true
				return a, nil
			}
		}
	}

	// Delegate to active tab
	var cmd tea.Cmd
	switch a.tab {
	case tabDatapoints:
		a.datapoints, cmd = a.datapoints.Update(msg)
	case tabTags:
		a.tags, cmd = a.tags.Update(msg)
	case tabSettings:
		a.settings, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)
	tabs := centerBlockUniform(a.renderTabs(), a.width)

	var content string
	switch a.tab {
	case tabDatapoints:
		content = a.datapoints.View()
	case tabTags:
		content = a.tags.View()
	case tabSettings:
		content = a.settings.View()
	}
	content = centerBlockUniform(content, a.width)

	if a.quitConfirm {
		content = centerBlockUniform(a.renderQuitConfirm(), a.width)
	} else if a.helpOpen {
		content = centerBlockUniform(a.renderHelp(), a.width)
	}

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n\n%s%s", banner, tabs, content, hints, feedback)
}

func (a *App) switchTab(newTab int) (App, tea.Cmd) {
	oldTab := a.tab
	a.tab = newTab
	if oldTab != newTab {
		return *a, a.initTab(newTab)
	}
	return *a, nil
}

func (a App) renderTabs() string {
	segments := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.tab {
			segments = append(segments, TabActiveStyle.Render(name))
		} else {
			segments = append(segments, TabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func (a App) initTab(tab int) tea.Cmd {
	switch tab {
	case tabDatapoints:
		return a.datapoints.Init()
	case tabTags:
		return a.tags.Init()
	case tabSettings:
		return a.settings.Init()
	}
	return nil
}

// hasUnsaved reports whether quitting would drop an in-progress tag edit.
func (a App) hasUnsaved() bool {
	return a.datapoints.hasActiveEdit()
}

// canExitToTabNav keeps arrow-up from leaving a nested view.
func (a App) canExitToTabNav() bool {
	switch a.tab {
	case tabDatapoints:
		return a.datapoints.view == datapointsViewList
	}
	return true
}

func (a App) renderQuitConfirm() string {
	body := "A tag edit is still open. Quit anyway?"
	if !a.hasUnsaved() {
		body = "Quit datapoint?"
	}
	return components.Indent(components.ConfirmDialog("Quit", body), 1)
}

func (a App) renderHelp() string {
	rows := []components.TableRow{
		{Label: "←/→", Value: "Switch tab"},
		{Label: "↑/↓", Value: "Move"},
		{Label: "enter", Value: "Open / edit tags"},
		{Label: "t", Value: "Edit tags in detail view"},
		{Label: "esc", Value: "Back / discard edit"},
		{Label: "r", Value: "Reload"},
		{Label: "q", Value: "Quit"},
	}
	return components.Table("Help", rows, a.width)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint("y", "Confirm"),
			components.Hint("n", "Cancel"),
		}
	}
	if a.helpOpen {
		return []string{components.Hint("esc", "Back")}
	}
	if a.tab == tabDatapoints && a.datapoints.hasActiveEdit() {
		return []string{
			components.Hint("enter", "Save tags"),
			components.Hint("esc", "Discard"),
		}
	}
	hints := []string{
		components.Hint("←/→", "Tabs"),
		components.Hint("enter", "Open"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	}
	return hints
}

// tabIndexForKey maps number keys to tabs.
func tabIndexForKey(key string) (int, bool) {
	switch key {
	case "1":
		return tabDatapoints, true
	case "2":
		return tabTags, true
	case "3":
		return tabSettings, true
	}
	return 0, false
}

// centerBlockUniform centers a multi-line block as a unit within width.
func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	blockWidth := lipgloss.Width(s)
	if blockWidth >= width {
		return s
	}
	pad := (width - blockWidth) / 2
	if pad <= 0 {
		return s
	}
	return lipgloss.NewStyle().PaddingLeft(pad).Render(s)
}
