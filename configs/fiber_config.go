package configs

import (
	"errors"

	"communion.invite/configs/configslog"
	"communion.invite/pkg/renderer"
	"communion.invite/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FiberConfig returns the fiber settings for the web process.
func FiberConfig(cfg *AppConfig) fiber.Config {
	return fiber.Config{
		AppName:               "communion.invite",
		Views:                 views.NewEngine(cfg.ViewsReload),
		ViewsLayout:           renderer.LayoutMain,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          ErrorHandler,
	}
}

// ErrorHandler renders errors that escaped the handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	switch {
	case code == fiber.StatusNotFound:
		return renderer.NotFound(c, "The page you are looking for does not exist.")
	case code >= fiber.StatusInternalServerError:
		configslog.Log.Error("Unhandled request error",
			zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
		if renderErr := renderer.Error(c, "Something went wrong on our side."); renderErr != nil {
			return c.Status(code).SendString(fiber.ErrInternalServerError.Message)
		}
		return nil
	default:
		return c.Status(code).SendString(err.Error())
	}
}
