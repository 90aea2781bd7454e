package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/core/forecast"
	"weatherlookup.app/internal/core/search"
	"weatherlookup.app/internal/ports"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{21.4, 21},
		{21.5, 22},
		{-0.4, 0},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "round(%v)", tt.in)
	}
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "01 Oca Pzt", dateLabel("2024-01-01"))
	assert.Equal(t, "29 Şub Per", dateLabel("2024-02-29"))
	assert.Equal(t, "18 Ağu Paz", dateLabel("2024-08-18"))
	assert.Equal(t, "31 Ara Sal", dateLabel("2024-12-31"))
	assert.Equal(t, "not-a-date", dateLabel("not-a-date"))
}

func TestPresenter_State(t *testing.T) {
	p := NewPresenter("https://openweathermap.org/img/wn/")
	updated := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	result := &search.Result{
		SessionID: "s-1",
		Query:     "Ankara",
		Status:    search.StatusSuccess,
		Current: &ports.CurrentConditions{
			LocationName:       "Ankara",
			CountryCode:        "TR",
			TemperatureCelsius: 21.5,
			IconID:             "01d",
			Description:        "açık",
		},
		DailyForecast: []forecast.DailyEntry{
			{Date: "2024-01-01", TemperatureCelsius: 10, IconID: "02d", Description: "az bulutlu", MinCelsius: 2.4, MaxCelsius: 19.5},
		},
		ForecastStatus: search.ForecastAvailable,
		UpdatedAt:      updated,
	}

	resp := p.State(result)

	assert.Equal(t, "s-1", resp.SessionID)
	assert.Equal(t, "success", resp.Status)
	assert.False(t, resp.IsLoading)
	assert.Empty(t, resp.ErrorMessage)
	assert.Equal(t, "available", resp.ForecastStatus)
	assert.Equal(t, updated, resp.UpdatedAt)

	require.NotNil(t, resp.Current)
	assert.Equal(t, 22, resp.Current.TemperatureRounded)
	assert.Equal(t, "https://openweathermap.org/img/wn/01d@2x.png", resp.Current.IconURL)

	require.Len(t, resp.DailyForecast, 1)
	day := resp.DailyForecast[0]
	assert.Equal(t, "01 Oca Pzt", day.DateLabel)
	assert.Equal(t, 2, day.MinRounded)
	assert.Equal(t, 20, day.MaxRounded)
	assert.Equal(t, "https://openweathermap.org/img/wn/02d.png", day.IconURL)
}

func TestPresenter_FailedState(t *testing.T) {
	p := NewPresenter("https://openweathermap.org/img/wn")

	resp := p.State(&search.Result{
		SessionID:      "s-2",
		Status:         search.StatusFailed,
		ErrorMessage:   search.MessageEmptyQuery,
		ForecastStatus: search.ForecastNone,
	})

	assert.Equal(t, "failed", resp.Status)
	assert.Nil(t, resp.Current)
	assert.NotNil(t, resp.DailyForecast)
	assert.Empty(t, resp.DailyForecast)
	assert.Equal(t, search.MessageEmptyQuery, resp.ErrorMessage)
}

func TestPresenter_MissingIconLeavesURLEmpty(t *testing.T) {
	p := NewPresenter("https://openweathermap.org/img/wn")

	resp := p.State(&search.Result{
		SessionID: "s-1",
		Status:    search.StatusSuccess,
		Current:   &ports.CurrentConditions{LocationName: "Ankara", TemperatureCelsius: 21},
		DailyForecast: []forecast.DailyEntry{
			{Date: "2024-01-01", MinCelsius: 2, MaxCelsius: 9},
		},
	})

	require.NotNil(t, resp.Current)
	assert.Empty(t, resp.Current.IconURL)
	require.Len(t, resp.DailyForecast, 1)
	assert.Empty(t, resp.DailyForecast[0].IconURL)
}
