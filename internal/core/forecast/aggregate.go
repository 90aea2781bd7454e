package forecast

import (
	"sort"

	"weatherlookup.app/internal/ports"
)

type dayGroup struct {
	samples []ports.ForecastSample
	clocks  []string
}

// Aggregate groups 3-hour samples by calendar date and summarises the first
// MaxDays dates in ascending order. The midday sample represents its day when
// present, otherwise the first sample received for that day.
func Aggregate(samples []ports.ForecastSample) []DailyEntry {
	groups := make(map[string]*dayGroup)
	for _, s := range samples {
		if s.Timestamp == "" {
			continue
		}
		date, clock := splitTimestamp(s.Timestamp)
		g, ok := groups[date]
		if !ok {
			g = &dayGroup{}
			groups[date] = g
		}
		g.samples = append(g.samples, s)
		g.clocks = append(g.clocks, clock)
	}

	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > MaxDays {
		dates = dates[:MaxDays]
	}

	entries := make([]DailyEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, summarise(date, groups[date]))
	}
	return entries
}

func summarise(date string, g *dayGroup) DailyEntry {
	rep := g.samples[0]
	for i, clock := range g.clocks {
		if isMidday(clock) {
			rep = g.samples[i]
			break
		}
	}

	minC := g.samples[0].TemperatureMinCelsius
	maxC := g.samples[0].TemperatureMaxCelsius
	for _, s := range g.samples[1:] {
		if s.TemperatureMinCelsius < minC {
			minC = s.TemperatureMinCelsius
		}
		if s.TemperatureMaxCelsius > maxC {
			maxC = s.TemperatureMaxCelsius
		}
	}

	return DailyEntry{
		Date:               date,
		TemperatureCelsius: rep.TemperatureCelsius,
		IconID:             rep.IconID,
		Description:        rep.Description,
		MinCelsius:         minC,
		MaxCelsius:         maxC,
	}
}
