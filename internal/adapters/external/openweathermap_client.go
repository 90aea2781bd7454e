package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultRequestTimeout        = 10 * time.Second

	currentEndpoint  = "weather"
	forecastEndpoint = "forecast"

	requestUnits    = "metric"
	requestLanguage = "tr"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClientAdapter implements the WeatherClient port against OpenWeatherMap
type OpenWeatherMapClientAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the OpenWeatherMap client
type OpenWeatherMapClientParams struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPClient
	Logger     ports.Logger
}

// statusCode holds the embedded "cod" field, which is a number on some
// endpoints and a string on others.
type statusCode struct {
	value   int
	present bool
}

func (s *statusCode) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid status code %q: %w", raw, err)
	}
	s.value = code
	s.present = true
	return nil
}

// providerMessage holds the "message" field. The forecast endpoint sends a
// number there on success, which carries no text.
type providerMessage string

func (m *providerMessage) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		*m = ""
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*m = providerMessage(text)
	return nil
}

type responseStatus struct {
	Cod     statusCode      `json:"cod"`
	Message providerMessage `json:"message"`
}

func (r *responseStatus) status() *responseStatus {
	return r
}

type statusCarrier interface {
	status() *responseStatus
}

type owmMain struct {
	Temp    float64 `json:"temp"`
	TempMin float64 `json:"temp_min"`
	TempMax float64 `json:"temp_max"`
}

type owmCondition struct {
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// OpenWeatherMapCurrentResponse represents the /weather response
type OpenWeatherMapCurrentResponse struct {
	responseStatus
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main    owmMain        `json:"main"`
	Weather []owmCondition `json:"weather"`
}

// OpenWeatherMapForecastResponse represents the /forecast response
type OpenWeatherMapForecastResponse struct {
	responseStatus
	List []struct {
		DtTxt   string         `json:"dt_txt"`
		Main    owmMain        `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

// NewOpenWeatherMapClientAdapter creates a new OpenWeatherMap client adapter
func NewOpenWeatherMapClientAdapter(params OpenWeatherMapClientParams) *OpenWeatherMapClientAdapter {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapClientAdapter{
		apiKey:  strings.TrimSpace(params.APIKey),
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// CredentialConfigured reports whether an API key is available
func (p *OpenWeatherMapClientAdapter) CredentialConfigured() bool {
	return p.apiKey != ""
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapClientAdapter) GetProviderName() string {
	return "openweathermap"
}

// FetchCurrent retrieves current conditions for a city
func (p *OpenWeatherMapClientAdapter) FetchCurrent(ctx context.Context, city string) (*ports.CurrentConditions, error) {
	var resp OpenWeatherMapCurrentResponse
	if err := p.fetch(ctx, currentEndpoint, city, &resp); err != nil {
		return nil, err
	}

	conditions := &ports.CurrentConditions{
		LocationName:       resp.Name,
		CountryCode:        resp.Sys.Country,
		TemperatureCelsius: resp.Main.Temp,
	}
	if len(resp.Weather) > 0 {
		conditions.IconID = resp.Weather[0].Icon
		conditions.Description = resp.Weather[0].Description
	}
	return conditions, nil
}

// FetchForecast retrieves the 3-hour forecast samples for a city
func (p *OpenWeatherMapClientAdapter) FetchForecast(ctx context.Context, city string) ([]ports.ForecastSample, error) {
	var resp OpenWeatherMapForecastResponse
	if err := p.fetch(ctx, forecastEndpoint, city, &resp); err != nil {
		return nil, err
	}

	samples := make([]ports.ForecastSample, 0, len(resp.List))
	for _, item := range resp.List {
		sample := ports.ForecastSample{
			Timestamp:             item.DtTxt,
			TemperatureCelsius:    item.Main.Temp,
			TemperatureMinCelsius: item.Main.TempMin,
			TemperatureMaxCelsius: item.Main.TempMax,
		}
		if len(item.Weather) > 0 {
			sample.IconID = item.Weather[0].Icon
			sample.Description = item.Weather[0].Description
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func (p *OpenWeatherMapClientAdapter) fetch(ctx context.Context, endpoint, city string, out statusCarrier) error {
	if !p.CredentialConfigured() {
		return errors.NewConfigurationError("OpenWeatherMap API key is not configured", nil)
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return errors.NewValidationError("city cannot be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpointURL(endpoint, city), nil)
	if err != nil {
		return errors.NewNetworkError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewNetworkError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewNetworkError("failed to decode OpenWeatherMap response", err)
	}

	status := out.status()
	code := resp.StatusCode
	if status.Cod.present {
		code = status.Cod.value
	}
	if code == http.StatusOK {
		return nil
	}

	if status.Message != "" {
		return errors.NewProviderStatusError(string(status.Message))
	}
	return errors.NewNotFoundError(fmt.Sprintf("OpenWeatherMap returned status %d", code))
}

func (p *OpenWeatherMapClientAdapter) endpointURL(endpoint, city string) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("units", requestUnits)
	query.Set("lang", requestLanguage)
	query.Set("appid", p.apiKey)
	return p.baseURL + "/" + endpoint + "?" + query.Encode()
}
