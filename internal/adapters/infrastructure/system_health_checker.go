package infrastructure

import (
	"context"

	"weatherlookup.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker. Nil checkers are skipped.
func NewSystemHealthChecker(checkers ...ports.HealthChecker) *SystemHealthChecker {
	active := make([]ports.HealthChecker, 0, len(checkers))
	for _, c := range checkers {
		if c != nil {
			active = append(active, c)
		}
	}
	return &SystemHealthChecker{checkers: active}
}

// CheckAll performs health checks on all components, keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for _, checker := range s.checkers {
		status := checker.Check(ctx)
		results[status.Component] = status
	}
	return results
}

// IsHealthy reports whether no component is unhealthy. Degraded components do not fail the system.
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == statusUnhealthy {
			return false
		}
	}
	return true
}
