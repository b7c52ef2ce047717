package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthReturnsStatus(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Write(jsonResponse(map[string]any{"status": "ok"}))
	})

	status, err := client.Health()
	require.NoError(t, err)
	assert.Equal(t, "ok", status)
}

func TestHealthUnreachableServerErrors(t *testing.T) {
	srv, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Health()
	assert.Error(t, err)
}
