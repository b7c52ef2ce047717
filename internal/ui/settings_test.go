package ui

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatic-tools/datapoint-cli/internal/config"
	"github.com/chromatic-tools/datapoint-cli/internal/ui/components"
)

func TestSettingsHealthCheckUpdatesStatus(t *testing.T) {
	_, client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"status": "ok"}})
	})
	model := NewSettingsModel(client, &config.Config{Username: "alex"})
	model.width = 80

	cmd := model.Init()
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())

	assert.Equal(t, "ok", model.serverStatus)
}

func TestSettingsUnreachableServer(t *testing.T) {
	srv, client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	model := NewSettingsModel(client, nil)
	model, _ = model.Update(model.checkHealth().(healthCheckedMsg))
	assert.Equal(t, "unreachable", model.serverStatus)
}

func TestSettingsViewMasksAPIKey(t *testing.T) {
	model := NewSettingsModel(nil, &config.Config{
		Username: "alex",
		APIKey:   "dpt_0123456789abcdef",
	})
	model.width = 80

	out := components.SanitizeText(model.View())
	assert.Contains(t, out, "alex")
	assert.NotContains(t, out, "dpt_0123456789abcdef")
	assert.Contains(t, out, "cdef")
}

func TestMaskKeyShortKeysFullyHidden(t *testing.T) {
	assert.Equal(t, "••••", maskKey("short"))
	assert.Equal(t, "dpt_…cdef", maskKey("dpt_0123456789abcdef"))
}
