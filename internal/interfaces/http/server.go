package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/sgi-guatemart/pkg/logger"
)

// NewApp crea la aplicación Fiber con las plantillas embebidas, el manejador de
// errores y recuperación de panics. Un request que falla nunca detiene el proceso.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		Views:                 NewViews(),
		ViewsLayout:           LayoutMain,
		ErrorHandler:          ErrorHandler(log, appName),
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	return app
}
