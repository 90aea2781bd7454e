package external

import (
	"context"
	"strings"
	"time"

	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// WeatherClientMetricsDecorator records the outcome and latency of every provider call
type WeatherClientMetricsDecorator struct {
	client  ports.WeatherClient
	metrics ports.MetricsCollector
}

func NewWeatherClientMetricsDecorator(client ports.WeatherClient, metrics ports.MetricsCollector) ports.WeatherClient {
	return &WeatherClientMetricsDecorator{
		client:  client,
		metrics: metrics,
	}
}

func (d *WeatherClientMetricsDecorator) FetchCurrent(ctx context.Context, city string) (*ports.CurrentConditions, error) {
	startTime := time.Now()
	current, err := d.client.FetchCurrent(ctx, city)
	d.metrics.RecordWeatherAPICall(currentEndpoint, callOutcome(err), time.Since(startTime))
	return current, err
}

func (d *WeatherClientMetricsDecorator) FetchForecast(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	startTime := time.Now()
	samples, err := d.client.FetchForecast(ctx, city)
	d.metrics.RecordWeatherAPICall(forecastEndpoint, callOutcome(err), time.Since(startTime))
	return samples, err
}

func (d *WeatherClientMetricsDecorator) CredentialConfigured() bool {
	return d.client.CredentialConfigured()
}

func (d *WeatherClientMetricsDecorator) GetProviderName() string {
	return d.client.GetProviderName()
}

// callOutcome turns an error into a low-cardinality metric label
func callOutcome(err error) string {
	if err == nil {
		return "success"
	}
	return strings.ToLower(strings.TrimSuffix(errors.TypeOf(err).String(), "_ERROR"))
}
