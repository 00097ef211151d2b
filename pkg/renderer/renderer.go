// Package renderer wraps fiber rendering with the status code and layout
// conventions used by the handlers.
package renderer

import (
	"communion.invite/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	LayoutMain  = "layouts/main"
	LayoutError = "layouts/error_layout"
)

// Render renders template with data inside layout and the given status.
func Render(c *fiber.Ctx, template string, layout string, data fiber.Map, status int) error {
	if data == nil {
		data = fiber.Map{}
	}
	c.Status(status)
	if err := c.Render(template, data, layout); err != nil {
		configslog.Log.Error("Template render failed",
			zap.String("template", template), zap.String("path", c.Path()), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "page could not be rendered")
	}
	return nil
}

// NotFound renders the standard 404 page, or JSON when the client prefers it.
func NotFound(c *fiber.Ctx, message string) error {
	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
	}
	return Render(c, "errors/404", LayoutError, fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	}, fiber.StatusNotFound)
}

// Error renders the standard 500 page, or JSON when the client prefers it.
func Error(c *fiber.Ctx, message string) error {
	if c.Accepts("application/json", "text/html") == "application/json" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
	}
	return Render(c, "errors/500", LayoutError, fiber.Map{
		"Title":   "Server Error",
		"Message": message,
	}, fiber.StatusInternalServerError)
}
