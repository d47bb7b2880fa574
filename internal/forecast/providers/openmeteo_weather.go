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

// OpenMeteoWeatherProvider implements forecast.WeatherProvider against the
// Open-Meteo Forecast API, returning both the hourly series and the daily
// aggregates for the market location. Wind speeds are requested in m/s.
type OpenMeteoWeatherProvider struct {
	name    string
	baseURL string
	tz      *time.Location
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoWeatherProvider(client *http.Client, tz *time.Location) *OpenMeteoWeatherProvider {
	return &OpenMeteoWeatherProvider{
		name:    "openmeteo-weather",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		tz:      tz,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: defaultBackoff(),
		},
		circuit: newBreaker("openmeteo-weather"),
	}
}

func (p *OpenMeteoWeatherProvider) Name() string {
	return p.name
}

// FetchWeather requests the hourly and daily forecast for a location over
// the given number of forecast days.
func (p *OpenMeteoWeatherProvider) FetchWeather(ctx context.Context, loc forecast.Location, days int) (forecast.WeatherBundle, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%.2f", loc.Lat))
		values.Set("longitude", fmt.Sprintf("%.2f", loc.Lon))
		values.Set("hourly", "temperature_2m,precipitation,wind_speed_10m")
		values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max")
		values.Set("forecast_days", strconv.Itoa(days))
		values.Set("timezone", p.tz.String())
		values.Set("wind_speed_unit", "ms")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return forecast.WeatherBundle{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Hourly struct {
			Time          []string   `json:"time"`
			Temperature2m []*float64 `json:"temperature_2m"`
			Precipitation []*float64 `json:"precipitation"`
			WindSpeed10m  []*float64 `json:"wind_speed_10m"`
		} `json:"hourly"`
		Daily struct {
			Time             []string   `json:"time"`
			Temperature2mMax []*float64 `json:"temperature_2m_max"`
			Temperature2mMin []*float64 `json:"temperature_2m_min"`
			PrecipSum        []*float64 `json:"precipitation_sum"`
			PrecipProbMax    []*float64 `json:"precipitation_probability_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return forecast.WeatherBundle{}, fmt.Errorf("decode weather payload: %w", err)
	}
	if len(payload.Hourly.Time) == 0 && len(payload.Daily.Time) == 0 {
		return forecast.WeatherBundle{}, fmt.Errorf("weather %w", errEmptyPayload)
	}

	var bundle forecast.WeatherBundle

	bundle.Hourly = make(forecast.HourlySeries, 0, len(payload.Hourly.Time))
	for i, raw := range payload.Hourly.Time {
		ts, err := time.ParseInLocation(openMeteoHourlyLayout, raw, p.tz)
		if err != nil {
			return forecast.WeatherBundle{}, fmt.Errorf("malformed weather timestamp %q: %w", raw, err)
		}
		bundle.Hourly = append(bundle.Hourly, forecast.HourlySample{
			Time:          ts,
			Temperature:   pick(payload.Hourly.Temperature2m, i),
			Precipitation: pick(payload.Hourly.Precipitation, i),
			WindSpeed:     pick(payload.Hourly.WindSpeed10m, i),
		})
	}

	bundle.Daily = make([]forecast.DailyEntry, 0, len(payload.Daily.Time))
	for i, date := range payload.Daily.Time {
		bundle.Daily = append(bundle.Daily, forecast.DailyEntry{
			Date:          date,
			TempMax:       pick(payload.Daily.Temperature2mMax, i),
			TempMin:       pick(payload.Daily.Temperature2mMin, i),
			PrecipSum:     pick(payload.Daily.PrecipSum, i),
			PrecipProbMax: pick(payload.Daily.PrecipProbMax, i),
		})
	}

	return bundle, nil
}
