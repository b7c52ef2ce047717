package api

// Health calls /api/health and returns the store's status string. The TUI
// runs it once at startup to distinguish "server down" from "bad key".
func (c *Client) Health() (string, error) {
	data, err := c.get("/api/health")
	if err != nil {
		return "", err
	}

	payload, err := decodeOne[struct {
		Status string `json:"status"`
	}](data)
	if err != nil {
		return "", err
	}
	return payload.Status, nil
}
