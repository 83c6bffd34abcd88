package service

import (
	"math"

	"covid19-tracker-service/internal/model"
)

type casesTypeStyle struct {
	title      string
	color      string
	multiplier float64
	red        bool
}

var casesTypeStyles = map[model.CasesType]casesTypeStyle{
	model.CasesTypeCases:     {title: "Coronavirus cases", color: "#CC1034", multiplier: 800, red: true},
	model.CasesTypeRecovered: {title: "Recovered", color: "#7dd71d", multiplier: 1200},
	model.CasesTypeDeaths:    {title: "Deaths", color: "#fb4443", multiplier: 2000, red: true},
}

// InfoCards builds the three headline cards for a summary, marking the one
// matching the selected cases type as active.
func InfoCards(summary model.Summary, selected model.CasesType) []model.InfoCard {
	cards := make([]model.InfoCard, 0, len(model.CasesTypes))
	for _, t := range model.CasesTypes {
		style := casesTypeStyles[t]
		cards = append(cards, model.InfoCard{
			Title:     style.title,
			CasesType: t,
			Today:     PrettyPrintStat(summary.Today(t)),
			Total:     CompactCount(summary.Value(t)),
			Active:    t == selected,
			Red:       style.red,
		})
	}
	return cards
}

// MapCircles sizes one marker per country by the selected figure.
func MapCircles(countries []model.CountrySummary, selected model.CasesType) []model.MapCircle {
	style, ok := casesTypeStyles[selected]
	if !ok {
		style = casesTypeStyles[model.CasesTypeCases]
		selected = model.CasesTypeCases
	}

	circles := make([]model.MapCircle, 0, len(countries))
	for _, c := range countries {
		value := c.Value(selected)
		circles = append(circles, model.MapCircle{
			Country: c.Country,
			Center:  model.MapCenter{Lat: c.CountryInfo.Lat, Lng: c.CountryInfo.Long},
			Value:   value,
			Radius:  math.Sqrt(float64(value)) * style.multiplier,
			Color:   style.color,
		})
	}
	return circles
}
