package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chromatic-tools/datapoint-cli/internal/api"
	"github.com/chromatic-tools/datapoint-cli/internal/config"
	"github.com/chromatic-tools/datapoint-cli/internal/ui/components"
)

// --- Messages ---

type healthCheckedMsg struct {
	status string
	err    error
}

// --- Settings Model ---

type SettingsModel struct {
	client *api.Client
	config *config.Config

	serverStatus string

	width  int
	height int
}

// NewSettingsModel builds the settings UI model.
func NewSettingsModel(client *api.Client, cfg *config.Config) SettingsModel {
	return SettingsModel{
		client:       client,
		config:       cfg,
		serverStatus: "checking",
	}
}

func (m SettingsModel) Init() tea.Cmd {
	m.serverStatus = "checking"
	return m.checkHealth
}

func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case healthCheckedMsg:
		if msg.err != nil {
			m.serverStatus = "unreachable"
		} else {
			m.serverStatus = msg.status
		}
		return m, nil
	case tea.KeyMsg:
		if isKey(msg, "r") {
			m.serverStatus = "checking"
			return m, m.checkHealth
		}
	}
	return m, nil
}

func (m SettingsModel) checkHealth() tea.Msg {
	status, err := m.client.Health()
	return healthCheckedMsg{status: status, err: err}
}

func (m SettingsModel) View() string {
	rows := []components.TableRow{
		{Label: "Server", Value: m.serverURL()},
		{Label: "Status", Value: m.serverStatus},
		{Label: "Config", Value: config.Path()},
	}
	if m.config != nil {
		rows = append(rows,
			components.TableRow{Label: "User", Value: m.config.Username},
			components.TableRow{Label: "Key", Value: maskKey(m.config.APIKey)},
		)
	}
	return components.Table("Settings", rows, m.width)
}

func (m SettingsModel) serverURL() string {
	if m.config != nil && m.config.ServerURL != "" {
		return m.config.ServerURL
	}
	return api.DefaultBaseURL
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "••••"
	}
	return key[:4] + "…" + key[len(key)-4:]
}
