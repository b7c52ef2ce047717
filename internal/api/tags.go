package api

// --- Tag Methods ---
//
// Append and remove take one tag name and the datapoints it applies to.
// Callers issue one call per changed tag; the server does no cross-tag
// batching. These two methods satisfy the tags.TagStore capability.

type tagOpInput struct {
	TagName      string   `json:"tag_name"`
	DatapointIDs []string `json:"datapoint_ids"`
}

// AppendTagByName attaches the named tag to the given datapoints, creating
// the tag server-side if it does not exist yet.
func (c *Client) AppendTagByName(tagName string, datapointIDs []string) error {
	_, err := c.post("/api/tags/append", tagOpInput{
		TagName:      tagName,
		DatapointIDs: datapointIDs,
	})
	return err
}

// RemoveTagFromDatapoints detaches the named tag from the given datapoints.
func (c *Client) RemoveTagFromDatapoints(tagName string, datapointIDs []string) error {
	_, err := c.post("/api/tags/remove", tagOpInput{
		TagName:      tagName,
		DatapointIDs: datapointIDs,
	})
	return err
}

// ListTags returns the tag index with per-tag usage counts.
func (c *Client) ListTags() ([]Tag, error) {
	data, err := c.get("/api/tags")
	if err != nil {
		return nil, err
	}
	return decodeList[Tag](data)
}
