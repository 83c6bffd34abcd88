package service

import (
	"covid19-tracker-service/internal/model"
)

// Event is something that moves a dashboard from one ViewState to the next.
type Event interface {
	Name() string
}

// WorldwideLoaded is the initial worldwide summary arriving.
type WorldwideLoaded struct {
	Summary model.WorldwideSummary
}

// CountriesLoaded is the country list arriving.
type CountriesLoaded struct {
	Countries []model.CountrySummary
}

// CountrySelected is a selector change whose summary has been fetched.
type CountrySelected struct {
	Code    string
	Summary model.Summary
}

// CasesTypeSelected is a click on one of the info cards.
type CasesTypeSelected struct {
	Type model.CasesType
}

func (WorldwideLoaded) Name() string   { return "worldwide_loaded" }
func (CountriesLoaded) Name() string   { return "countries_loaded" }
func (CountrySelected) Name() string   { return "country_selected" }
func (CasesTypeSelected) Name() string { return "cases_type_selected" }

// Transition returns the state that follows s after e. It never modifies s.
// Events it cannot apply, such as an unknown cases type, leave the state as is.
func Transition(s model.ViewState, e Event) model.ViewState {
	switch ev := e.(type) {
	case WorldwideLoaded:
		s.SelectedCountry = model.Worldwide
		s.SummaryFigures = ev.Summary.Summary()

	case CountriesLoaded:
		s.Options, s.Rows = Normalize(ev.Countries)
		s.MapCountries = make([]model.CountrySummary, len(ev.Countries))
		copy(s.MapCountries, ev.Countries)

	case CountrySelected:
		s.SelectedCountry = ev.Code
		s.SummaryFigures = ev.Summary
		if ev.Code == model.Worldwide || ev.Summary.CountryInfo == nil {
			s.MapCenter = model.DefaultMapCenter
			s.MapZoom = model.DefaultMapZoom
		} else {
			s.MapCenter = model.MapCenter{Lat: ev.Summary.CountryInfo.Lat, Lng: ev.Summary.CountryInfo.Long}
			s.MapZoom = model.CountryMapZoom
		}

	case CasesTypeSelected:
		if ev.Type.Valid() {
			s.SelectedCasesType = ev.Type
		}
	}

	return s
}
