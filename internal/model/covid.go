package model

// Figures are the counters disease.sh reports for both a single country and
// the whole world.
type Figures struct {
	Updated        int64 `json:"updated"`
	Cases          int64 `json:"cases"`
	TodayCases     int64 `json:"todayCases"`
	Deaths         int64 `json:"deaths"`
	TodayDeaths    int64 `json:"todayDeaths"`
	Recovered      int64 `json:"recovered"`
	TodayRecovered int64 `json:"todayRecovered"`
	Active         int64 `json:"active"`
	Critical       int64 `json:"critical"`
	Population     int64 `json:"population"`
}

type CountryInfo struct {
	ID   int64   `json:"_id"`
	Iso2 string  `json:"iso2"`
	Iso3 string  `json:"iso3"`
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
	Flag string  `json:"flag"`
}

// CountrySummary is one element of GET /countries, or the body of
// GET /countries/{code}.
type CountrySummary struct {
	Figures
	Country     string      `json:"country"`
	Continent   string      `json:"continent,omitempty"`
	CountryInfo CountryInfo `json:"countryInfo"`
}

// WorldwideSummary is the body of GET /all.
type WorldwideSummary struct {
	Figures
	AffectedCountries int64 `json:"affectedCountries"`
}

// Summary is whatever is currently shown in the info cards: either a country
// or the worldwide aggregate. CountryInfo is nil for the latter.
type Summary struct {
	Figures
	Country           string       `json:"country,omitempty"`
	CountryInfo       *CountryInfo `json:"countryInfo,omitempty"`
	AffectedCountries int64        `json:"affectedCountries,omitempty"`
}

func (c CountrySummary) Summary() Summary {
	info := c.CountryInfo
	return Summary{
		Figures:     c.Figures,
		Country:     c.Country,
		CountryInfo: &info,
	}
}

func (w WorldwideSummary) Summary() Summary {
	return Summary{
		Figures:           w.Figures,
		AffectedCountries: w.AffectedCountries,
	}
}

// Value returns the figure matching the given cases type.
func (f Figures) Value(t CasesType) int64 {
	switch t {
	case CasesTypeRecovered:
		return f.Recovered
	case CasesTypeDeaths:
		return f.Deaths
	default:
		return f.Cases
	}
}

// Today returns the daily delta matching the given cases type.
func (f Figures) Today(t CasesType) int64 {
	switch t {
	case CasesTypeRecovered:
		return f.TodayRecovered
	case CasesTypeDeaths:
		return f.TodayDeaths
	default:
		return f.TodayCases
	}
}
