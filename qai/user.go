// Package qai provides the HTTP client for the QAI platform API.
package qai

import (
	"context"
	"net/http"
)

// GetUserInfo returns the caller's account and work group information as
// raw JSON.
func (c *Client) GetUserInfo(ctx context.Context) (string, error) {
	return c.SendRequest(ctx, http.MethodGet, WorkGroupPath, c.zoneParams(), nil, nil)
}
