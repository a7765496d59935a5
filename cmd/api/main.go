package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kavinkharthik/proforma-api/internal/application/invoicing"
	"github.com/kavinkharthik/proforma-api/internal/domain/repository"
	"github.com/kavinkharthik/proforma-api/internal/infrastructure/email"
	infrapdf "github.com/kavinkharthik/proforma-api/internal/infrastructure/pdf"
	"github.com/kavinkharthik/proforma-api/internal/infrastructure/postgres"
	httpRouter "github.com/kavinkharthik/proforma-api/internal/interfaces/http"
	"github.com/kavinkharthik/proforma-api/pkg/config"
	"github.com/kavinkharthik/proforma-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if cfg.Mail.APIKey == "" {
		log.Warn().Msg("BREVO_API_KEY not set, email endpoints will refuse to send")
	}

	ctx := context.Background()

	// The payload archive is optional: without DB settings the service runs
	// render-only.
	var archive repository.InvoiceRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("ensure schema")
		}
		archive = postgres.NewInvoiceRepository(pool)
	} else {
		log.Info().Msg("no database configured, invoice payloads will not be archived")
	}

	renderer := infrapdf.NewRenderer(cfg.Assets.PaymentQRPath)
	overlayer := infrapdf.NewOverlayer()
	mailer := email.NewBrevoMailer(cfg.Mail)
	invoiceUC := invoicing.NewUseCase(renderer, overlayer, mailer, archive, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024, // template uploads and data-URL images
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Proforma Invoice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
