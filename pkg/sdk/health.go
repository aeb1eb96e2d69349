package sahayata

import "context"

// HealthStatus represents the aggregated catalog health.
type HealthStatus struct {
	Status  string            // "ok", "degraded", "error"
	Backend string            // catalog driver
	Checks  map[string]string // component → "ok"/"error"
}

// Health checks the catalog connection.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.svc.Health.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:  string(report.Status),
		Backend: report.Backend,
		Checks:  checks,
	}
}
