package client

import "context"

// Health checks whether the API is alive and ready
func (c *Client) Health(ctx context.Context) (map[string]string, error) {
	var status map[string]string
	if err := c.doRequest(ctx, "GET", "/readyz", nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}
