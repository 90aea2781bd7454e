package search

import (
	"time"

	"weatherlookup.app/internal/core/forecast"
	"weatherlookup.app/internal/ports"
)

// Status is the phase of a session's search interaction
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// StatusFromString converts the stored form back to a Status
func StatusFromString(s string) Status {
	switch s {
	case "loading":
		return StatusLoading
	case "success":
		return StatusSuccess
	case "failed":
		return StatusFailed
	default:
		return StatusIdle
	}
}

// ForecastStatus tells a missing forecast apart from an empty one
type ForecastStatus string

const (
	ForecastNone        ForecastStatus = "none"
	ForecastAvailable   ForecastStatus = "available"
	ForecastEmpty       ForecastStatus = "empty"
	ForecastUnavailable ForecastStatus = "unavailable"
)

// User-facing messages
const (
	MessageEmptyQuery        = "Please enter a city."
	MessageMissingCredential = "Missing API key. Put OPENWEATHERMAP_API_KEY=YOUR_KEY in .env (project root) and restart the service."
	MessageCityNotFound      = "City not found."
	MessageNetworkError      = "Network error. Please try again."
	providerMessagePrefix    = "Hata: "
)

// Result is the single search slot of a session
type Result struct {
	SessionID      string
	Query          string
	Generation     uint64
	Status         Status
	Current        *ports.CurrentConditions
	DailyForecast  []forecast.DailyEntry
	ErrorMessage   string
	ForecastStatus ForecastStatus
	UpdatedAt      time.Time
}

// IsLoading reports whether a search is in flight for the session
func (r *Result) IsLoading() bool {
	return r.Status == StatusLoading
}

// HasError reports whether the search ended with a user-visible error
func (r *Result) HasError() bool {
	return r.ErrorMessage != ""
}

func newResult(sessionID, query string, generation uint64, now time.Time) *Result {
	return &Result{
		SessionID:      sessionID,
		Query:          query,
		Generation:     generation,
		Status:         StatusIdle,
		DailyForecast:  []forecast.DailyEntry{},
		ForecastStatus: ForecastNone,
		UpdatedAt:      now,
	}
}

func (r *Result) toData() *ports.SearchStateData {
	daily := make([]ports.DailyForecastData, 0, len(r.DailyForecast))
	for _, entry := range r.DailyForecast {
		daily = append(daily, entry.ToData())
	}
	return &ports.SearchStateData{
		SessionID:      r.SessionID,
		Query:          r.Query,
		Generation:     r.Generation,
		Status:         r.Status.String(),
		Current:        r.Current,
		DailyForecast:  daily,
		ErrorMessage:   r.ErrorMessage,
		ForecastStatus: string(r.ForecastStatus),
		UpdatedAt:      r.UpdatedAt,
	}
}

func resultFromData(data *ports.SearchStateData) *Result {
	daily := make([]forecast.DailyEntry, 0, len(data.DailyForecast))
	for _, d := range data.DailyForecast {
		daily = append(daily, forecast.DailyEntry{
			Date:               d.Date,
			TemperatureCelsius: d.TemperatureCelsius,
			IconID:             d.IconID,
			Description:        d.Description,
			MinCelsius:         d.MinCelsius,
			MaxCelsius:         d.MaxCelsius,
		})
	}
	forecastStatus := ForecastStatus(data.ForecastStatus)
	if forecastStatus == "" {
		forecastStatus = ForecastNone
	}
	return &Result{
		SessionID:      data.SessionID,
		Query:          data.Query,
		Generation:     data.Generation,
		Status:         StatusFromString(data.Status),
		Current:        data.Current,
		DailyForecast:  daily,
		ErrorMessage:   data.ErrorMessage,
		ForecastStatus: forecastStatus,
		UpdatedAt:      data.UpdatedAt,
	}
}
