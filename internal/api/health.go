package api

import (
	"context"
	"fmt"
	"net/http"
)

// HealthStatus is the backend's /health/ response.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health probes the backend health endpoint without authentication.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/health/",
		out:    &status,
		noAuth: true,
	})
	if err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return &status, nil
}
