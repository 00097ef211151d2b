package routes

import (
	"communion.invite/configs"
	"communion.invite/pkg/assets"
	"communion.invite/pkg/renderer"
	"communion.invite/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes registers middleware, the invitation routes, static assets and
// the 404 fallback on app.
func SetupRoutes(app *fiber.App, cfg *configs.AppConfig) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(compress.New())

	app.Static(assets.StaticPrefix, cfg.StaticDir)
	app.Get("/healthz", healthHandler)

	calendarService := services.NewCalendarService()
	invitationService := services.NewInvitationService(cfg.StaticDir, calendarService)
	registerInvitationRoutes(app, invitationService, calendarService)

	// Must stay last: catches every unmatched route.
	app.Use(notFoundHandler)
}

func healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func notFoundHandler(c *fiber.Ctx) error {
	return renderer.NotFound(c, "The page you are looking for does not exist.")
}
