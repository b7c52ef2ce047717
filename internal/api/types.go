package api

import (
	"encoding/json"
	"time"
)

// --- API Response Envelope ---

type apiResponse[T any] struct {
	Data  T       `json:"data"`
	Error *apiErr `json:"error,omitempty"`
}

type apiErr struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSONMap handles JSONB metadata fields that some backends return as strings.
type JSONMap map[string]any

func (j *JSONMap) UnmarshalJSON(data []byte) error {
	// Try as object first
	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		*j = m
		return nil
	}
	// Try as string containing JSON
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "null" {
			*j = make(map[string]any)
			return nil
		}
		return json.Unmarshal([]byte(s), (*map[string]any)(j))
	}
	*j = make(map[string]any)
	return nil
}

// --- Datapoint ---

// TagName is the server-side tag object attached to a datapoint.
type TagName struct {
	Name string `json:"name"`
}

// TagItem wraps one tag reference on a datapoint. The server nests the tag
// object under a "tag" key, so the wire shape is {"tag": {"name": "..."}}.
type TagItem struct {
	Tag TagName `json:"tag"`
}

// Datapoint is one taggable record in the store.
type Datapoint struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dataset   string    `json:"dataset,omitempty"`
	Tags      []TagItem `json:"tags"`
	Metadata  JSONMap   `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagNames flattens the nested tag items into plain names, preserving
// server order.
func (d Datapoint) TagNames() []string {
	names := make([]string, 0, len(d.Tags))
	for _, item := range d.Tags {
		names = append(names, item.Tag.Name)
	}
	return names
}

// Tag is a tag as listed by the tag index endpoint.
type Tag struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// --- Auth ---

// LoginInput is the unauthenticated first-run login request.
type LoginInput struct {
	Username string `json:"username"`
}

// LoginResponse contains the session information after successful login.
type LoginResponse struct {
	APIKey   string `json:"api_key"`
	Username string `json:"username"`
}

// --- Query ---

// QueryParams is a map of URL query parameters.
type QueryParams map[string]string
