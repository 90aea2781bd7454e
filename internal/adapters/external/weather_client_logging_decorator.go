package external

import (
	"context"
	"time"

	"weatherlookup.app/internal/ports"
)

// WeatherClientLoggingDecorator decorates a weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for weather clients
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// FetchCurrent wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchCurrent(ctx context.Context, city string) (*ports.CurrentConditions, error) {
	providerName := d.client.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("endpoint", currentEndpoint),
		ports.F("city", city),
		ports.F("event", "request"))

	startTime := time.Now()
	current, err := d.client.FetchCurrent(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, currentEndpoint, city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", currentEndpoint),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location", current.LocationName),
		ports.F("temperature", current.TemperatureCelsius),
		ports.F("description", current.Description))

	return current, nil
}

// FetchForecast wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchForecast(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	providerName := d.client.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("endpoint", forecastEndpoint),
		ports.F("city", city),
		ports.F("event", "request"))

	startTime := time.Now()
	samples, err := d.client.FetchForecast(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logFailure(providerName, forecastEndpoint, city, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", forecastEndpoint),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(samples)))

	return samples, nil
}

func (d *WeatherClientLoggingDecorator) logFailure(provider, endpoint, city string, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("provider", provider),
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("event", "error"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}

// CredentialConfigured delegates to the wrapped client
func (d *WeatherClientLoggingDecorator) CredentialConfigured() bool {
	return d.client.CredentialConfigured()
}

// GetProviderName returns the name of the wrapped client with logging indication
func (d *WeatherClientLoggingDecorator) GetProviderName() string {
	return "logged(" + d.client.GetProviderName() + ")"
}
