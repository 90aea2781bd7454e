package ports

import (
	"context"
	"time"
)

// StateStore is a byte store with per-key generation counters. A value is only
// written while its generation is still the latest one issued for the key.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	NextGeneration(ctx context.Context, key string, ttl time.Duration) (uint64, error)
	SetIfCurrent(ctx context.Context, key string, generation uint64, value []byte, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// DailyForecastData is one aggregated forecast day as stored and served
type DailyForecastData struct {
	Date               string  `json:"date"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	IconID             string  `json:"icon_id"`
	Description        string  `json:"description"`
	MinCelsius         float64 `json:"min_celsius"`
	MaxCelsius         float64 `json:"max_celsius"`
}

// SearchStateData is the persisted form of a session's search result slot
type SearchStateData struct {
	SessionID      string              `json:"session_id"`
	Query          string              `json:"query"`
	Generation     uint64              `json:"generation"`
	Status         string              `json:"status"`
	Current        *CurrentConditions  `json:"current,omitempty"`
	DailyForecast  []DailyForecastData `json:"daily_forecast"`
	ErrorMessage   string              `json:"error_message,omitempty"`
	ForecastStatus string              `json:"forecast_status"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// SearchStateRepository stores search state per session
type SearchStateRepository interface {
	Load(ctx context.Context, sessionID string) (*SearchStateData, error)
	NextGeneration(ctx context.Context, sessionID string) (uint64, error)
	Publish(ctx context.Context, state *SearchStateData) (bool, error)
}
