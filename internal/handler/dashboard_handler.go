package handler

import (
	"covid19-tracker-service/internal/model"
	"covid19-tracker-service/internal/service"

	"emperror.dev/errors"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	sessions *service.SessionStore
}

func NewDashboardHandler(sessions *service.SessionStore) *DashboardHandler {
	return &DashboardHandler{
		sessions: sessions,
	}
}

type selectCountryRequest struct {
	Code string `json:"code"`
}

type selectCasesTypeRequest struct {
	Type string `json:"type"`
}

// CreateSession starts a dashboard session and performs its initial load.
// A partially failed load still creates the session and reports the failure
// in the error field.
func (h *DashboardHandler) CreateSession(c *fiber.Ctx) error {
	id, controller, err := h.sessions.Create(c.UserContext())

	resp := dashboardResponse(id, controller)
	if err != nil {
		resp.Error = err.Error()
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": resp,
	})
}

func (h *DashboardHandler) GetSession(c *fiber.Ctx) error {
	id := c.Params("id")
	controller, err := h.sessions.Get(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dashboardResponse(id, controller),
	})
}

// SelectCountry switches the session to a country code or "worldwide"
func (h *DashboardHandler) SelectCountry(c *fiber.Ctx) error {
	id := c.Params("id")
	controller, err := h.sessions.Get(id)
	if err != nil {
		return err
	}

	var req selectCountryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "code is required",
		})
	}

	if _, err := controller.SelectCountry(c.UserContext(), req.Code); err != nil && !errors.Is(err, service.ErrStaleResponse) {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dashboardResponse(id, controller),
	})
}

func (h *DashboardHandler) SelectCasesType(c *fiber.Ctx) error {
	id := c.Params("id")
	controller, err := h.sessions.Get(id)
	if err != nil {
		return err
	}

	var req selectCasesTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body: " + err.Error(),
		})
	}

	if _, err := controller.SelectCasesType(model.CasesType(req.Type)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dashboardResponse(id, controller),
	})
}

func (h *DashboardHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.sessions.Delete(c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Session closed",
	})
}

func dashboardResponse(id string, controller *service.ViewStateController) model.DashboardResponse {
	state := controller.State()
	resp := model.DashboardResponse{
		ID:         id,
		State:      state,
		InfoCards:  service.InfoCards(state.SummaryFigures, state.SelectedCasesType),
		MapCircles: service.MapCircles(state.MapCountries, state.SelectedCasesType),
	}
	if err := controller.LastError(); err != nil {
		resp.Error = err.Error()
	}
	return resp
}
