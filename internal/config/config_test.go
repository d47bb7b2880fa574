package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, time.Hour, cfg.WarmInterval)
	assert.Equal(t, 3, cfg.ForecastDays)
	assert.Equal(t, 24, cfg.WindWindowHours)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone.String())
	assert.Equal(t, "Chiba Katsuura", cfg.DetailLocation)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "30m")
	t.Setenv("FORECAST_DAYS", "5")
	t.Setenv("DETAIL_LOCATION", "Tokushima")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.ForecastDays)
	assert.Equal(t, "Tokushima", cfg.DetailLocation)
}

func TestLoadRejectsBadForecastDays(t *testing.T) {
	t.Setenv("FORECAST_DAYS", "9")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDetailLocation(t *testing.T) {
	t.Setenv("DETAIL_LOCATION", "Atlantis")
	_, err := Load()
	assert.Error(t, err)
}
