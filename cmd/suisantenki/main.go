package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/aoisome461/suisantenki-app/internal/api/http"
	"github.com/aoisome461/suisantenki-app/internal/config"
	"github.com/aoisome461/suisantenki-app/internal/dashboard"
	"github.com/aoisome461/suisantenki-app/internal/forecast"
	"github.com/aoisome461/suisantenki-app/internal/forecast/providers"
	"github.com/aoisome461/suisantenki-app/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound Open-Meteo calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	marine := providers.NewOpenMeteoMarineProvider(httpClient, cfg.Timezone)
	weather := providers.NewOpenMeteoWeatherProvider(httpClient, cfg.Timezone)

	// Core service orchestrating fetches, caching and derivation.
	service := forecast.NewService(marine, weather, forecast.ServiceConfig{
		Timezone:     cfg.Timezone,
		FetchTimeout: cfg.HTTPTimeout,
		CacheTTL:     cfg.CacheTTL,
		HorizonDays:  cfg.ForecastDays,
		WindowHours:  cfg.WindWindowHours,
	})

	// Scheduler that keeps the freshness caches warm.
	sched := scheduler.New(service, cfg.WarmInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "suisantenki-app",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "suisantenki-app",
		})
	})

	// Dashboard and API routes.
	httpapi.RegisterRoutes(app, service, dashboard.NewRenderer(), cfg.DetailLocation)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
