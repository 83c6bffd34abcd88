package service

import (
	"context"

	"covid19-tracker-service/internal/diseaseapi"
	"covid19-tracker-service/internal/model"

	"emperror.dev/errors"
)

// StatsService answers one-off stats queries that don't need a session.
type StatsService interface {
	Worldwide(ctx context.Context) (model.WorldwideSummary, error)
	Countries(ctx context.Context) ([]model.CountryOption, []model.TableRow, error)
	Country(ctx context.Context, code string) (model.CountrySummary, error)
}

type statsService struct {
	fetcher diseaseapi.Fetcher
}

func NewStatsService(fetcher diseaseapi.Fetcher) StatsService {
	return &statsService{
		fetcher: fetcher,
	}
}

func (s *statsService) Worldwide(ctx context.Context) (model.WorldwideSummary, error) {
	summary, err := s.fetcher.Worldwide(ctx)
	if err != nil {
		return summary, errors.WithMessage(err, "failed to fetch worldwide summary")
	}
	return summary, nil
}

func (s *statsService) Countries(ctx context.Context) ([]model.CountryOption, []model.TableRow, error) {
	countries, err := s.fetcher.Countries(ctx)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "failed to fetch countries")
	}

	options, rows := Normalize(countries)
	return options, rows, nil
}

func (s *statsService) Country(ctx context.Context, code string) (model.CountrySummary, error) {
	country, err := s.fetcher.Country(ctx, code)
	if err != nil {
		return country, errors.WithMessagef(err, "failed to fetch country %q", code)
	}
	return country, nil
}
