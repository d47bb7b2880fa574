package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/aoisome461/suisantenki-app/internal/forecast"
)

// AppConfig is the process-wide configuration, read once at startup.
type AppConfig struct {
	Port string

	// HTTPTimeout bounds each outbound upstream call.
	HTTPTimeout time.Duration

	// CacheTTL is the freshness window for cached upstream payloads.
	CacheTTL time.Duration

	// WarmInterval controls the cache-warming scheduler (0 disables it).
	WarmInterval time.Duration

	// ForecastDays is the matrix horizon in calendar dates.
	ForecastDays int

	// WindWindowHours is the forward wind-risk window.
	WindWindowHours int

	// Timezone is the dashboard's operating time zone.
	Timezone *time.Location

	// DetailLocation is the port shown in the detail charts by default.
	DetailLocation string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	ttlStr := getenvDefault("CACHE_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	warmStr := getenvDefault("WARM_INTERVAL", "1h")
	warm, err := time.ParseDuration(warmStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WARM_INTERVAL: %w", err)
	}
	cfg.WarmInterval = warm

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", forecast.DefaultHorizonDays)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 7 {
		return nil, fmt.Errorf("FORECAST_DAYS must be between 1 and 7, got %d", cfg.ForecastDays)
	}

	cfg.WindWindowHours = getenvInt("WIND_WINDOW_HOURS", forecast.DefaultWindWindowHours)

	tzName := getenvDefault("DASHBOARD_TZ", "Asia/Tokyo")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_TZ: %w", err)
	}
	cfg.Timezone = tz

	cfg.DetailLocation = getenvDefault("DETAIL_LOCATION", forecast.DefaultDetailLocation)
	if _, ok := forecast.FindLocation(cfg.DetailLocation); !ok {
		return nil, fmt.Errorf("DETAIL_LOCATION %q is not in the location table", cfg.DetailLocation)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
