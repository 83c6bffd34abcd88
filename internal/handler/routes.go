package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp builds the fiber app with the shared error handler and middleware.
func NewApp(accessLog bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	if accessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	return app
}

// SetupRoutes registers every route. cacheHandler may be nil when no shared
// cache is configured.
func SetupRoutes(app *fiber.App, statsHandler *StatsHandler, dashboardHandler *DashboardHandler, cacheHandler *CacheHandler) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1")

	// Stats routes
	statsRoutes := api.Group("/stats")
	statsRoutes.Get("/worldwide", statsHandler.GetWorldwide)
	statsRoutes.Get("/countries", statsHandler.GetCountries)
	statsRoutes.Get("/countries/:code", statsHandler.GetCountry)

	// Dashboard session routes
	sessionRoutes := api.Group("/dashboard/sessions")
	sessionRoutes.Post("/", dashboardHandler.CreateSession)
	sessionRoutes.Get("/:id", dashboardHandler.GetSession)
	sessionRoutes.Put("/:id/country", dashboardHandler.SelectCountry)
	sessionRoutes.Put("/:id/cases-type", dashboardHandler.SelectCasesType)
	sessionRoutes.Delete("/:id", dashboardHandler.DeleteSession)

	if cacheHandler != nil {
		api.Delete("/cache", cacheHandler.ClearCache)
	}
}
