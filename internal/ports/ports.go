package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherClient WeatherClient

	// Search state
	SearchStates SearchStateRepository
	StateStore   StateStore

	// History
	SearchHistory SearchHistoryRepository

	// Infrastructure
	Logger  Logger
	Metrics MetricsCollector
	Health  []HealthChecker
}
