package petapi

import "context"

// GetMonitoring returns the latest environmental reading for the default user.
func (c *Client) GetMonitoring(ctx context.Context, key string) (Monitoring, error) {
	return c.GetUserMonitoring(ctx, UserQuery{Key: key})
}

// GetUserMonitoring returns the latest monitoring snapshot for q.UserID.
func (c *Client) GetUserMonitoring(ctx context.Context, q UserQuery) (Monitoring, error) {
	return get[Monitoring](ctx, c, basePath+"/getMonitoring", q.withDefaults())
}
