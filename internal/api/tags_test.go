package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendTagByName(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tags/append", r.URL.Path)

		var body tagOpInput
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "reviewed", body.TagName)
		assert.Equal(t, []string{"dp-1"}, body.DatapointIDs)

		w.Write(jsonResponse(map[string]any{"applied": 1}))
	})

	err := client.AppendTagByName("reviewed", []string{"dp-1"})
	require.NoError(t, err)
}

func TestRemoveTagFromDatapoints(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tags/remove", r.URL.Path)

		var body tagOpInput
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "blurry", body.TagName)
		assert.Equal(t, []string{"dp-1", "dp-2"}, body.DatapointIDs)

		w.Write(jsonResponse(map[string]any{"applied": 2}))
	})

	err := client.RemoveTagFromDatapoints("blurry", []string{"dp-1", "dp-2"})
	require.NoError(t, err)
}

func TestListTags(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.Write(jsonResponse([]map[string]any{
			{"name": "reviewed", "count": 12},
			{"name": "blurry", "count": 3},
		}))
	})

	tags, err := client.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "reviewed", tags[0].Name)
	assert.Equal(t, 12, tags[0].Count)
}

func TestTagOpErrorSurfacesServerMessage(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"conflict","message":"tag is being rebuilt"}}`))
	})

	err := client.RemoveTagFromDatapoints("blurry", []string{"dp-1"})
	require.Error(t, err)
	assert.Equal(t, "conflict: tag is being rebuilt", err.Error())
}
