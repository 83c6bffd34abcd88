package handler

import (
	"covid19-tracker-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CacheHandler struct {
	cache service.ResponseCache
}

func NewCacheHandler(cache service.ResponseCache) *CacheHandler {
	return &CacheHandler{
		cache: cache,
	}
}

func (h *CacheHandler) ClearCache(c *fiber.Ctx) error {
	count, err := h.cache.Clear(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Cache cleared successfully",
		"cleared": count,
	})
}
