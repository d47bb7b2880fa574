package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/aoisome461/suisantenki-app/internal/forecast"
)

// openMeteoHourlyLayout is the local-time layout Open-Meteo uses for
// hourly timestamps.
const openMeteoHourlyLayout = "2006-01-02T15:04"

// OpenMeteoMarineProvider implements forecast.MarineProvider against the
// Open-Meteo Marine API. No API key is required.
type OpenMeteoMarineProvider struct {
	name    string
	baseURL string
	tz      *time.Location
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoMarineProvider(client *http.Client, tz *time.Location) *OpenMeteoMarineProvider {
	return &OpenMeteoMarineProvider{
		name:    "openmeteo-marine",
		baseURL: "https://marine-api.open-meteo.com/v1/marine",
		tz:      tz,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newBreaker("openmeteo-marine"),
	}
}

func (p *OpenMeteoMarineProvider) Name() string {
	return p.name
}

// FetchMarine requests the hourly wave and wind series for a location
// over the given number of forecast days.
func (p *OpenMeteoMarineProvider) FetchMarine(ctx context.Context, loc forecast.Location, days int) (forecast.HourlySeries, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%.2f", loc.Lat))
		values.Set("longitude", fmt.Sprintf("%.2f", loc.Lon))
		values.Set("hourly", "wave_height,wind_speed_10m,wind_direction_10m")
		values.Set("forecast_days", strconv.Itoa(days))
		values.Set("timezone", p.tz.String())

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Hourly struct {
			Time             []string   `json:"time"`
			WaveHeight       []*float64 `json:"wave_height"`
			WindSpeed10m     []*float64 `json:"wind_speed_10m"`
			WindDirection10m []*float64 `json:"wind_direction_10m"`
		} `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode marine payload: %w", err)
	}
	if len(payload.Hourly.Time) == 0 {
		return nil, fmt.Errorf("marine %w", errEmptyPayload)
	}

	series := make(forecast.HourlySeries, 0, len(payload.Hourly.Time))
	for i, raw := range payload.Hourly.Time {
		ts, err := time.ParseInLocation(openMeteoHourlyLayout, raw, p.tz)
		if err != nil {
			return nil, fmt.Errorf("malformed marine timestamp %q: %w", raw, err)
		}
		series = append(series, forecast.HourlySample{
			Time:          ts,
			WaveHeight:    pick(payload.Hourly.WaveHeight, i),
			WindSpeed:     pick(payload.Hourly.WindSpeed10m, i),
			WindDirection: pick(payload.Hourly.WindDirection10m, i),
		})
	}
	return series, nil
}
