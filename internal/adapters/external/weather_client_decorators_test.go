package external

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

func TestWeatherClientLoggingDecorator_FetchCurrent(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	logger := mocks.NewLogger(t)
	expected := &ports.CurrentConditions{LocationName: "Ankara", TemperatureCelsius: 21.6, Description: "açık"}

	client.EXPECT().GetProviderName().Return("openweathermap")
	client.EXPECT().FetchCurrent(mock.Anything, "Ankara").Return(expected, nil).Once()
	logger.EXPECT().Info("Weather API request started",
		ports.F("provider", "openweathermap"),
		ports.F("endpoint", "weather"),
		ports.F("city", "Ankara"),
		ports.F("event", "request")).Once()
	logger.EXPECT().Info("Weather API request completed",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	decorated := NewWeatherClientLoggingDecorator(client, logger)
	current, err := decorated.FetchCurrent(context.Background(), "Ankara")

	require.NoError(t, err)
	assert.Equal(t, expected, current)
	assert.Equal(t, "logged(openweathermap)", decorated.GetProviderName())
}

func TestWeatherClientLoggingDecorator_FetchForecastError(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	logger := mocks.NewLogger(t)
	failure := errors.NewNetworkError("failed to call OpenWeatherMap", stderrors.New("dial tcp: refused"))

	client.EXPECT().GetProviderName().Return("openweathermap")
	client.EXPECT().FetchForecast(mock.Anything, "Ankara").Return(nil, failure).Once()
	logger.EXPECT().Info("Weather API request started",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()
	logger.EXPECT().Error("Weather API request failed",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

	decorated := NewWeatherClientLoggingDecorator(client, logger)
	samples, err := decorated.FetchForecast(context.Background(), "Ankara")

	assert.Nil(t, samples)
	assert.Same(t, failure, err)
}

func TestWeatherClientLoggingDecorator_CredentialConfigured(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().CredentialConfigured().Return(false).Once()

	decorated := NewWeatherClientLoggingDecorator(client, mocks.NewLogger(t))

	assert.False(t, decorated.CredentialConfigured())
}

func TestWeatherClientMetricsDecorator(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		endpoint string
		outcome  string
	}{
		{"CurrentSuccess", nil, "weather", "success"},
		{"CurrentNotFound", errors.NewNotFoundError("city not found"), "weather", "not_found"},
		{"CurrentProviderStatus", errors.NewProviderStatusError("Invalid API key"), "weather", "provider_status"},
		{"ForecastNetwork", errors.NewNetworkError("timeout", nil), "forecast", "network"},
		{"ForecastUntyped", stderrors.New("boom"), "forecast", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewWeatherClient(t)
			metrics := mocks.NewMetricsCollector(t)
			metrics.EXPECT().RecordWeatherAPICall(tt.endpoint, tt.outcome, mock.Anything).Once()

			decorated := NewWeatherClientMetricsDecorator(client, metrics)

			var err error
			if tt.endpoint == "weather" {
				var current *ports.CurrentConditions
				if tt.err == nil {
					current = &ports.CurrentConditions{LocationName: "Ankara"}
				}
				client.EXPECT().FetchCurrent(mock.Anything, "Ankara").Return(current, tt.err).Once()
				_, err = decorated.FetchCurrent(context.Background(), "Ankara")
			} else {
				client.EXPECT().FetchForecast(mock.Anything, "Ankara").Return(nil, tt.err).Once()
				_, err = decorated.FetchForecast(context.Background(), "Ankara")
			}

			assert.Equal(t, tt.err, err)
		})
	}
}
