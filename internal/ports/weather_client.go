package ports

import "context"

// CurrentConditions is the current weather for a resolved location
type CurrentConditions struct {
	LocationName       string  `json:"location_name"`
	CountryCode        string  `json:"country_code"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	IconID             string  `json:"icon_id"`
	Description        string  `json:"description"`
}

// ForecastSample is one 3-hour reading of the forecast feed. Timestamp keeps the
// provider's "2006-01-02 15:04:05" text form.
type ForecastSample struct {
	Timestamp             string
	TemperatureCelsius    float64
	TemperatureMinCelsius float64
	TemperatureMaxCelsius float64
	IconID                string
	Description           string
}

// WeatherClient defines the contract for the remote weather data source
type WeatherClient interface {
	FetchCurrent(ctx context.Context, city string) (*CurrentConditions, error)
	FetchForecast(ctx context.Context, city string) ([]ForecastSample, error)
	CredentialConfigured() bool
	GetProviderName() string
}
