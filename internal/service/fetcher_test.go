package service

import (
	"context"
	"sync"

	"covid19-tracker-service/internal/diseaseapi"
	"covid19-tracker-service/internal/model"
)

type fakeFetcher struct {
	mu sync.Mutex

	worldwide    model.WorldwideSummary
	worldwideErr error
	countries    []model.CountrySummary
	countriesErr error
	byCode       map[string]model.CountrySummary
	countryErr   error

	// Country(code) blocks on gates[code] when present and reports the code
	// on entered first.
	gates   map[string]chan struct{}
	entered chan string

	// Countries blocks on countriesGate when set.
	countriesGate chan struct{}

	calls int
}

func newFakeFetcher() *fakeFetcher {
	countries := testCountries()
	byCode := make(map[string]model.CountrySummary, len(countries))
	for _, c := range countries {
		byCode[c.CountryInfo.Iso2] = c
	}

	return &fakeFetcher{
		worldwide: model.WorldwideSummary{
			Figures:           model.Figures{Cases: 1000, TodayCases: 10, Deaths: 50, Recovered: 900},
			AffectedCountries: 3,
		},
		countries: countries,
		byCode:    byCode,
		entered:   make(chan string, 8),
	}
}

func (f *fakeFetcher) Worldwide(ctx context.Context) (model.WorldwideSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.worldwide, f.worldwideErr
}

func (f *fakeFetcher) Countries(ctx context.Context) ([]model.CountrySummary, error) {
	f.mu.Lock()
	f.calls++
	gate := f.countriesGate
	countries, err := f.countries, f.countriesErr
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (f *fakeFetcher) Country(ctx context.Context, code string) (model.CountrySummary, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gates[code]
	c, ok := f.byCode[code]
	err := f.countryErr
	f.mu.Unlock()

	f.entered <- code
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return model.CountrySummary{}, ctx.Err()
		}
	}

	if err != nil {
		return model.CountrySummary{}, err
	}
	if !ok {
		return model.CountrySummary{}, &diseaseapi.RequestError{Kind: diseaseapi.ErrNetworkFailure, Endpoint: "country", StatusCode: 404}
	}
	return c, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testCountries() []model.CountrySummary {
	return []model.CountrySummary{
		{
			Country:     "Afghanistan",
			CountryInfo: model.CountryInfo{Iso2: "AF", Lat: 33, Long: 65},
			Figures:     model.Figures{Cases: 200, TodayCases: 2, Deaths: 7, Recovered: 150},
		},
		{
			Country:     "USA",
			CountryInfo: model.CountryInfo{Iso2: "US", Lat: 38, Long: -97},
			Figures:     model.Figures{Cases: 700, TodayCases: 1500, Deaths: 40, TodayDeaths: 3, Recovered: 650, TodayRecovered: 12},
		},
		{
			Country:     "Vatican City",
			CountryInfo: model.CountryInfo{Iso2: "VA", Lat: 41.9, Long: 12.45},
			Figures:     model.Figures{Cases: 100, Recovered: 100},
		},
	}
}
