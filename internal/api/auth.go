package api

// Login performs first-run login (unauthenticated).
func (c *Client) Login(username string) (*LoginResponse, error) {
	data, err := c.post("/api/auth/login", LoginInput{Username: username})
	if err != nil {
		return nil, err
	}
	return decodeOne[LoginResponse](data)
}
