package forecast

import "weatherlookup.app/internal/ports"

// MaxDays is the number of calendar days a daily forecast covers
const MaxDays = 5

const middayTime = "12:00:00"

// DailyEntry summarises one calendar day of forecast samples
type DailyEntry struct {
	Date               string
	TemperatureCelsius float64
	IconID             string
	Description        string
	MinCelsius         float64
	MaxCelsius         float64
}

// ToData converts the entry to its stored form
func (e DailyEntry) ToData() ports.DailyForecastData {
	return ports.DailyForecastData{
		Date:               e.Date,
		TemperatureCelsius: e.TemperatureCelsius,
		IconID:             e.IconID,
		Description:        e.Description,
		MinCelsius:         e.MinCelsius,
		MaxCelsius:         e.MaxCelsius,
	}
}

// splitTimestamp separates "2006-01-02 15:04:05" (or the T form) into date and time
func splitTimestamp(ts string) (date, clock string) {
	for i, r := range ts {
		if r == ' ' || r == 'T' {
			return ts[:i], ts[i+1:]
		}
	}
	return ts, ""
}

// isMidday matches 12:00:00, treating an HH:MM clock as HH:MM:00
func isMidday(clock string) bool {
	if len(clock) == len("15:04") {
		clock += ":00"
	}
	return len(clock) >= len(middayTime) && clock[:len(middayTime)] == middayTime
}
