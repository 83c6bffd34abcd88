package model

import (
	"emperror.dev/errors"
)

// Worldwide is the selector value standing for the aggregate of all countries.
const Worldwide = "worldwide"

const (
	DefaultMapZoom = 2
	CountryMapZoom = 4
)

var DefaultMapCenter = MapCenter{Lat: 39.80746, Lng: -5.4796}

const ErrUnknownCasesType = errors.Sentinel("unknown cases type")

type CasesType string

const (
	CasesTypeCases     CasesType = "cases"
	CasesTypeRecovered CasesType = "recovered"
	CasesTypeDeaths    CasesType = "deaths"
)

// CasesTypes lists every valid cases type in display order.
var CasesTypes = []CasesType{CasesTypeCases, CasesTypeRecovered, CasesTypeDeaths}

func (t CasesType) Valid() bool {
	switch t {
	case CasesTypeCases, CasesTypeRecovered, CasesTypeDeaths:
		return true
	}
	return false
}

func ParseCasesType(s string) (CasesType, error) {
	t := CasesType(s)
	if !t.Valid() {
		return "", errors.WithDetails(ErrUnknownCasesType, "type", s)
	}
	return t, nil
}

// CountryOption is a single entry of the country selector.
type CountryOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TableRow is a country reduced to what the cases table shows.
type TableRow struct {
	Country      string `json:"country"`
	Iso2         string `json:"iso2"`
	Flag         string `json:"flag,omitempty"`
	Cases        int64  `json:"cases"`
	Deaths       int64  `json:"deaths"`
	Recovered    int64  `json:"recovered"`
	CasesDisplay string `json:"casesDisplay"`
}

type MapCenter struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ViewState is the complete state of one dashboard session. Values are
// replaced wholesale on every transition, slices included, so a copy handed
// out to a reader never changes underneath it.
type ViewState struct {
	SelectedCountry   string           `json:"selectedCountry"`
	SelectedCasesType CasesType        `json:"selectedCasesType"`
	SummaryFigures    Summary          `json:"summaryFigures"`
	MapCenter         MapCenter        `json:"mapCenter"`
	MapZoom           int              `json:"mapZoom"`
	Options           []CountryOption  `json:"options"`
	Rows              []TableRow       `json:"rows"`
	MapCountries      []CountrySummary `json:"mapCountries"`
}

func InitialViewState() ViewState {
	return ViewState{
		SelectedCountry:   Worldwide,
		SelectedCasesType: CasesTypeCases,
		MapCenter:         DefaultMapCenter,
		MapZoom:           DefaultMapZoom,
		Options:           []CountryOption{},
		Rows:              []TableRow{},
		MapCountries:      []CountrySummary{},
	}
}

// InfoCard is one of the three headline boxes (cases, recovered, deaths).
type InfoCard struct {
	Title     string    `json:"title"`
	CasesType CasesType `json:"casesType"`
	Today     string    `json:"today"`
	Total     string    `json:"total"`
	Active    bool      `json:"active"`
	Red       bool      `json:"red"`
}

// MapCircle is a country marker sized by the selected figure.
type MapCircle struct {
	Country string    `json:"country"`
	Center  MapCenter `json:"center"`
	Value   int64     `json:"value"`
	Radius  float64   `json:"radius"`
	Color   string    `json:"color"`
}
