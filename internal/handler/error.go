package handler

import (
	"covid19-tracker-service/internal/diseaseapi"
	"covid19-tracker-service/internal/model"
	"covid19-tracker-service/internal/service"

	"emperror.dev/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := statusCode(err)
	if code >= fiber.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("Request failed")
	}

	// Return JSON response with error
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusCode(err error) int {
	// Check if it's a Fiber error
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrUnknownCasesType), errors.Is(err, diseaseapi.ErrEmptyCountryCode):
		return fiber.StatusBadRequest
	case errors.Is(err, diseaseapi.ErrNetworkFailure), errors.Is(err, diseaseapi.ErrMalformedResponse):
		return fiber.StatusBadGateway
	}

	return fiber.StatusInternalServerError
}
