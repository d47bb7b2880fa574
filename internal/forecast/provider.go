package forecast

import "context"

// MarineProvider abstracts the marine forecast data source.
type MarineProvider interface {
	Name() string
	FetchMarine(ctx context.Context, loc Location, days int) (HourlySeries, error)
}

// WeatherProvider abstracts the land weather data source serving the
// target market location.
type WeatherProvider interface {
	Name() string
	FetchWeather(ctx context.Context, loc Location, days int) (WeatherBundle, error)
}
