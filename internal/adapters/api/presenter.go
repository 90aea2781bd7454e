package api

import (
	"math"
	"strings"
	"time"

	"weatherlookup.app/internal/core/forecast"
	"weatherlookup.app/internal/core/search"
	"weatherlookup.app/internal/ports"
)

var (
	turkishMonths   = [...]string{"Oca", "Şub", "Mar", "Nis", "May", "Haz", "Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara"}
	turkishWeekdays = [...]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"}
)

// CurrentResponse is the current conditions card
type CurrentResponse struct {
	LocationName       string  `json:"location_name"`
	CountryCode        string  `json:"country_code"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	TemperatureRounded int     `json:"temperature_rounded"`
	IconID             string  `json:"icon_id"`
	IconURL            string  `json:"icon_url"`
	Description        string  `json:"description"`
}

// DailyResponse is one day of the forecast strip
type DailyResponse struct {
	Date               string  `json:"date"`
	DateLabel          string  `json:"date_label"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	MinRounded         int     `json:"min_rounded"`
	MaxRounded         int     `json:"max_rounded"`
	IconID             string  `json:"icon_id"`
	IconURL            string  `json:"icon_url"`
	Description        string  `json:"description"`
}

// StateResponse is a session's search state as served to clients
type StateResponse struct {
	SessionID      string           `json:"session_id"`
	Query          string           `json:"query"`
	Status         string           `json:"status"`
	IsLoading      bool             `json:"is_loading"`
	ErrorMessage   string           `json:"error_message"`
	ForecastStatus string           `json:"forecast_status"`
	Current        *CurrentResponse `json:"current"`
	DailyForecast  []DailyResponse  `json:"daily_forecast"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Presenter turns search results into display-ready responses
type Presenter struct {
	iconBaseURL string
}

func NewPresenter(iconBaseURL string) *Presenter {
	return &Presenter{iconBaseURL: strings.TrimRight(iconBaseURL, "/")}
}

func (p *Presenter) State(result *search.Result) StateResponse {
	daily := make([]DailyResponse, 0, len(result.DailyForecast))
	for _, entry := range result.DailyForecast {
		daily = append(daily, p.daily(entry))
	}

	return StateResponse{
		SessionID:      result.SessionID,
		Query:          result.Query,
		Status:         result.Status.String(),
		IsLoading:      result.IsLoading(),
		ErrorMessage:   result.ErrorMessage,
		ForecastStatus: string(result.ForecastStatus),
		Current:        p.current(result.Current),
		DailyForecast:  daily,
		UpdatedAt:      result.UpdatedAt,
	}
}

func (p *Presenter) current(c *ports.CurrentConditions) *CurrentResponse {
	if c == nil {
		return nil
	}
	return &CurrentResponse{
		LocationName:       c.LocationName,
		CountryCode:        c.CountryCode,
		TemperatureCelsius: c.TemperatureCelsius,
		TemperatureRounded: roundHalfUp(c.TemperatureCelsius),
		IconID:             c.IconID,
		IconURL:            p.iconURL(c.IconID, "@2x.png"),
		Description:        c.Description,
	}
}

func (p *Presenter) daily(entry forecast.DailyEntry) DailyResponse {
	return DailyResponse{
		Date:               entry.Date,
		DateLabel:          dateLabel(entry.Date),
		TemperatureCelsius: entry.TemperatureCelsius,
		MinRounded:         roundHalfUp(entry.MinCelsius),
		MaxRounded:         roundHalfUp(entry.MaxCelsius),
		IconID:             entry.IconID,
		IconURL:            p.iconURL(entry.IconID, ".png"),
		Description:        entry.Description,
	}
}

// iconURL is empty when the provider sent no icon
func (p *Presenter) iconURL(iconID, suffix string) string {
	if iconID == "" {
		return ""
	}
	return p.iconBaseURL + "/" + iconID + suffix
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// dateLabel renders a YYYY-MM-DD date in the short Turkish form "01 Oca Pzt".
// Unparseable dates are returned unchanged.
func dateLabel(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("02") + " " + turkishMonths[t.Month()-1] + " " + turkishWeekdays[t.Weekday()]
}
