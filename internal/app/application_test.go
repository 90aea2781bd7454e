package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/config"
)

const (
	currentBody  = `{"cod":200,"name":"Ankara","sys":{"country":"TR"},"main":{"temp":21.6,"temp_min":20,"temp_max":23},"weather":[{"icon":"01d","description":"açık"}]}`
	forecastBody = `{"cod":"200","list":[
		{"dt_txt":"2024-01-01 09:00:00","main":{"temp":5,"temp_min":2,"temp_max":6},"weather":[{"icon":"04d","description":"bulutlu"}]},
		{"dt_txt":"2024-01-01 12:00:00","main":{"temp":10,"temp_min":8,"temp_max":20},"weather":[{"icon":"01d","description":"açık"}]}
	]}`
)

func captureSlog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func newProvider(t *testing.T) (*httptest.Server, *atomic.Int32) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/weather"):
			fmt.Fprint(w, currentBody)
		case strings.HasSuffix(r.URL.Path, "/forecast"):
			fmt.Fprint(w, forecastBody)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"cod":"404","message":"city not found"}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testConfig(t *testing.T, baseURL, apiKey string) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Log:    config.LogConfig{Level: "debug"},
		Weather: config.WeatherConfig{
			APIKey:                apiKey,
			BaseURL:               baseURL,
			IconBaseURL:           "https://openweathermap.org/img/wn",
			RequestTimeoutSeconds: 5,
			EnableLogging:         true,
			LogFilePath:           filepath.Join(dir, "logs", "weather_client.log"),
		},
		Session: config.SessionConfig{StoreType: config.StoreTypeMemory, TTLMinutes: 60},
		History: config.HistoryConfig{
			Enabled:              true,
			Driver:               "sqlite",
			SQLitePath:           filepath.Join(dir, "history.db"),
			RetentionDays:        30,
			PruneIntervalMinutes: 60,
		},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *Application {
	gin.SetMode(gin.TestMode)
	deps, err := NewDependencyContainer(cfg, DependencyOptions{Registry: prometheus.NewRegistry()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return application
}

func serve(t *testing.T, application *Application, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, req)
	return w
}

func TestCredentialDiagnostic(t *testing.T) {
	assert.Equal(t, "abcdef...", CredentialDiagnostic("abcdef123456"))
	assert.Equal(t, "(undefined)", CredentialDiagnostic(""))
}

func TestApplication_LogsCredentialDiagnosticOnce(t *testing.T) {
	logs := captureSlog(t)
	srv, _ := newProvider(t)

	application := newTestApplication(t, testConfig(t, srv.URL, "abcdef123456"))

	w := serve(t, application, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var opened struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))
	for i := 0; i < 3; i++ {
		w = serve(t, application, http.MethodPost, "/api/sessions/"+opened.SessionID+"/search", `{"city":"Ankara"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 1, strings.Count(logs.String(), `"msg":"Weather API credential"`))
	assert.Contains(t, logs.String(), `"OPENWEATHERMAP_API_KEY":"abcdef..."`)
	assert.NotContains(t, logs.String(), "abcdef123456")
}

func TestApplication_EndToEndSearch(t *testing.T) {
	captureSlog(t)
	srv, calls := newProvider(t)
	cfg := testConfig(t, srv.URL, "abcdef123456")
	application := newTestApplication(t, cfg)

	w := serve(t, application, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var opened struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))

	w = serve(t, application, http.MethodPost, "/api/sessions/"+opened.SessionID+"/search", `{"city":"Ankara"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var state struct {
		Status         string `json:"status"`
		ForecastStatus string `json:"forecast_status"`
		Current        struct {
			LocationName       string `json:"location_name"`
			TemperatureRounded int    `json:"temperature_rounded"`
		} `json:"current"`
		DailyForecast []struct {
			Date       string `json:"date"`
			DateLabel  string `json:"date_label"`
			MinRounded int    `json:"min_rounded"`
			MaxRounded int    `json:"max_rounded"`
		} `json:"daily_forecast"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "success", state.Status)
	assert.Equal(t, "available", state.ForecastStatus)
	assert.Equal(t, "Ankara", state.Current.LocationName)
	assert.Equal(t, 22, state.Current.TemperatureRounded)
	require.Len(t, state.DailyForecast, 1)
	assert.Equal(t, "01 Oca Pzt", state.DailyForecast[0].DateLabel)
	assert.Equal(t, 2, state.DailyForecast[0].MinRounded)
	assert.Equal(t, 20, state.DailyForecast[0].MaxRounded)
	assert.Equal(t, int32(2), calls.Load())

	w = serve(t, application, http.MethodGet, "/api/history?limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	var history []struct {
		Query        string `json:"query"`
		Status       string `json:"status"`
		ForecastDays int    `json:"forecast_days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "Ankara", history[0].Query)
	assert.Equal(t, "success", history[0].Status)
	assert.Equal(t, 1, history[0].ForecastDays)

	w = serve(t, application, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weather_api_requests_total{endpoint="weather",outcome="success"} 1`)
	assert.Contains(t, w.Body.String(), `weather_searches_total{status="success"} 1`)

	logContent, err := os.ReadFile(cfg.Weather.LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(logContent), "Ankara")
}

func TestApplication_MissingCredential(t *testing.T) {
	captureSlog(t)
	srv, calls := newProvider(t)
	cfg := testConfig(t, srv.URL, "")
	cfg.History.Enabled = false
	application := newTestApplication(t, cfg)

	w := serve(t, application, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var opened struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opened))

	w = serve(t, application, http.MethodPost, "/api/sessions/"+opened.SessionID+"/search", `{"city":"Ankara"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Missing API key")
	assert.Zero(t, calls.Load())

	w = serve(t, application, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, application, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"credential_configured":false`)
}

func TestNewDependencyContainer_InvalidHistoryDriver(t *testing.T) {
	captureSlog(t)
	cfg := testConfig(t, "http://localhost", "key")
	cfg.History.Driver = "oracle"

	deps, err := NewDependencyContainer(cfg, DependencyOptions{Registry: prometheus.NewRegistry()})

	assert.Nil(t, deps)
	assert.ErrorContains(t, err, "unsupported history driver")
}

func TestApplication_Shutdown(t *testing.T) {
	captureSlog(t)
	srv, _ := newProvider(t)
	application := newTestApplication(t, testConfig(t, srv.URL, "key"))

	assert.NoError(t, application.Shutdown(context.Background()))
}
