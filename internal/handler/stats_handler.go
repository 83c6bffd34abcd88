package handler

import (
	"covid19-tracker-service/internal/model"
	"covid19-tracker-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	stats service.StatsService
}

func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{
		stats: stats,
	}
}

// GetWorldwide returns the worldwide summary with its info cards
func (h *StatsHandler) GetWorldwide(c *fiber.Ctx) error {
	casesType, err := casesTypeQuery(c)
	if err != nil {
		return err
	}

	summary, err := h.stats.Worldwide(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": model.SummaryResponse{
			Summary:   summary.Summary(),
			InfoCards: service.InfoCards(summary.Summary(), casesType),
		},
	})
}

// GetCountries returns selector options and the sorted cases table
func (h *StatsHandler) GetCountries(c *fiber.Ctx) error {
	options, rows, err := h.stats.Countries(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": model.CountriesResponse{
			Options: options,
			Rows:    rows,
		},
	})
}

// GetCountry returns a single country summary with its info cards
func (h *StatsHandler) GetCountry(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "country code is required",
		})
	}

	casesType, err := casesTypeQuery(c)
	if err != nil {
		return err
	}

	country, err := h.stats.Country(c.UserContext(), code)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": model.SummaryResponse{
			Summary:   country.Summary(),
			InfoCards: service.InfoCards(country.Summary(), casesType),
		},
	})
}

func casesTypeQuery(c *fiber.Ctx) (model.CasesType, error) {
	raw := c.Query("casesType")
	if raw == "" {
		return model.CasesTypeCases, nil
	}
	return model.ParseCasesType(raw)
}
