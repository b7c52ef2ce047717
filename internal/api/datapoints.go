package api

import "fmt"

// --- Datapoint Methods ---

func (c *Client) GetDatapoint(id string) (*Datapoint, error) {
	data, err := c.get(fmt.Sprintf("/api/datapoints/%s", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Datapoint](data)
}

func (c *Client) QueryDatapoints(params QueryParams) ([]Datapoint, error) {
	data, err := c.get(buildQuery("/api/datapoints", params))
	if err != nil {
		return nil, err
	}
	return decodeList[Datapoint](data)
}
