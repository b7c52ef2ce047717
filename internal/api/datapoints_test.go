package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDatapoint(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/datapoints/dp-1", r.URL.Path)
		w.Write(jsonResponse(map[string]any{
			"id":   "dp-1",
			"name": "image-0001",
			"tags": []map[string]any{
				{"tag": map[string]any{"name": "reviewed"}},
				{"tag": map[string]any{"name": "blurry"}},
			},
		}))
	})

	dp, err := client.GetDatapoint("dp-1")
	require.NoError(t, err)
	assert.Equal(t, "dp-1", dp.ID)
	assert.Equal(t, []string{"reviewed", "blurry"}, dp.TagNames())
}

func TestQueryDatapoints(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/datapoints", r.URL.Path)
		assert.Equal(t, "train", r.URL.Query().Get("dataset"))
		w.Write(jsonResponse([]map[string]any{
			{"id": "1", "name": "one", "tags": []any{}},
			{"id": "2", "name": "two", "tags": []any{}},
		}))
	})

	items, err := client.QueryDatapoints(QueryParams{"dataset": "train"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Empty(t, items[0].TagNames())
}

func TestTagNamesPreservesServerOrder(t *testing.T) {
	dp := Datapoint{Tags: []TagItem{
		{Tag: TagName{Name: "b"}},
		{Tag: TagName{Name: "a"}},
	}}
	assert.Equal(t, []string{"b", "a"}, dp.TagNames())
}
