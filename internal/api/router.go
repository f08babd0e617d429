package api

import (
	"time"

	"billsnap/docs"
	"billsnap/internal/api/handlers"
	"billsnap/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupRouter wires the HTTP surface: the record-extraction endpoint, the
// health check, the static uploads mount, and swagger.
func SetupRouter(processHandler *handlers.ProcessHandler, serverCfg config.ServerConfig, uploadsDir string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Bill photos arrive inline as base64 data URIs.
		BodyLimit:    50 * 1024 * 1024,
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported so init() registers the spec
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Static("/uploads", uploadsDir)

	app.Post("/processImage", processHandler.ProcessImage)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return app
}
