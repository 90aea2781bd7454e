package infrastructure

import (
	"context"

	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// WeatherClientHealthChecker reports the provider and whether its credential is set.
// No request is sent to the provider.
type WeatherClientHealthChecker struct {
	client ports.WeatherClient
}

// NewWeatherClientHealthChecker creates a new weather client health checker
func NewWeatherClientHealthChecker(client ports.WeatherClient) *WeatherClientHealthChecker {
	return &WeatherClientHealthChecker{client: client}
}

// Check reports a degraded status when the API key is missing
func (w *WeatherClientHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weather_api",
		Details:   make(map[string]interface{}),
	}

	if w.client == nil {
		status.Status = statusUnhealthy
		status.Error = "weather client is not available"
		return status
	}

	configured := w.client.CredentialConfigured()
	status.Details["provider"] = w.client.GetProviderName()
	status.Details["credential_configured"] = configured

	if !configured {
		status.Status = statusDegraded
		status.Error = "OPENWEATHERMAP_API_KEY is not set"
		return status
	}

	status.Status = statusHealthy
	return status
}

// Pinger is implemented by state stores backed by a remote server
type Pinger interface {
	Ping(ctx context.Context) error
}

// StateStoreHealthChecker reports whether the session state store is reachable
type StateStoreHealthChecker struct {
	store     ports.StateStore
	storeType config.StoreType
}

// NewStateStoreHealthChecker creates a new state store health checker
func NewStateStoreHealthChecker(store ports.StateStore, storeType config.StoreType) *StateStoreHealthChecker {
	return &StateStoreHealthChecker{store: store, storeType: storeType}
}

// Check pings stores that support it; in-process stores are always healthy
func (s *StateStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "session_store",
		Details: map[string]interface{}{
			"type": s.storeType.String(),
		},
	}

	if s.store == nil {
		status.Status = statusUnhealthy
		status.Error = "state store is not available"
		return status
	}

	if pinger, ok := s.store.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	status.Status = statusHealthy
	return status
}
