package routes

import (
	"fmt"

	"pujasari/config"
	"pujasari/middleware"
	"pujasari/repository"
	"pujasari/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

type Options struct {
	Config config.Config
	Store  repository.Store
	Logger *logrus.Logger
}

// New merakit aplikasi Fiber beserta dokumen OpenAPI dari semua route.
// Dokumen belum didaftarkan ke swag; itu tugas pemanggil.
func New(opts Options) (*fiber.App, *schema.Document) {
	log := opts.Logger
	doc := schema.NewDocument(
		"Pujasari-Backend",
		"0.1.0",
		"Aplikasi backend untuk pujasari",
	)

	app := fiber.New(fiber.Config{
		AppName:               "pujasari",
		ErrorHandler:          middleware.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	metrics := middleware.NewMetrics()

	// Middleware global
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerMiddleware(log))
	app.Use(metrics.Middleware())
	app.Use(recover.New())
	app.Use(middleware.CorsMiddleware(opts.Config.CorsOrigins))

	app.Get("/healthz", healthz(opts.Store))
	app.Get("/metrics", metrics.Handler())
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	SetupRoutes(app, doc, opts.Store, log)
	return app, doc
}

func healthz(store repository.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Ping(c.UserContext()); err != nil {
			return fmt.Errorf("ping store: %w", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
