package forecast

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aoisome461/suisantenki-app/internal/store"
)

// ServiceConfig carries the tunables for a Service. Zero values fall back
// to the defaults below.
type ServiceConfig struct {
	Locations    []Location
	Timezone     *time.Location
	FetchTimeout time.Duration
	CacheTTL     time.Duration
	HorizonDays  int
	WindowHours  int

	// Now is the clock; tests inject a fixed one.
	Now func() time.Time
}

const (
	defaultFetchTimeout = 5 * time.Second
	defaultCacheTTL     = time.Hour
)

// Service orchestrates per-render fetching, caching and derivation. It
// holds no mutable state across renders other than the freshness caches;
// every derived value is recomputed per call from raw series.
type Service struct {
	marine  MarineProvider
	weather WeatherProvider

	marineCache  *store.TTLCache[HourlySeries]
	weatherCache *store.TTLCache[WeatherBundle]

	locations   []Location
	tz          *time.Location
	timeout     time.Duration
	horizonDays int
	windowHours int
	now         func() time.Time
}

// NewService creates a Service over the given providers.
func NewService(marine MarineProvider, weather WeatherProvider, cfg ServiceConfig) *Service {
	if cfg.Locations == nil {
		cfg.Locations = Locations()
	}
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	if cfg.WindowHours <= 0 {
		cfg.WindowHours = DefaultWindWindowHours
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		marine:       marine,
		weather:      weather,
		marineCache:  store.NewTTLCache[HourlySeries](cfg.CacheTTL),
		weatherCache: store.NewTTLCache[WeatherBundle](cfg.CacheTTL),
		locations:    cfg.Locations,
		tz:           cfg.Timezone,
		timeout:      cfg.FetchTimeout,
		horizonDays:  cfg.HorizonDays,
		windowHours:  cfg.WindowHours,
		now:          cfg.Now,
	}
}

// marineSeries returns the hourly marine series for a location, served
// from the freshness cache when possible.
func (s *Service) marineSeries(ctx context.Context, loc Location) (HourlySeries, error) {
	key := loc.CacheKey(KindMarine)
	if cached, ok := s.marineCache.Get(key); ok {
		return cached, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	series, err := s.marine.FetchMarine(fetchCtx, loc, s.horizonDays)
	if err != nil {
		return nil, fmt.Errorf("marine fetch for %s: %w", loc.Name, err)
	}
	s.marineCache.Set(key, series)
	return series, nil
}

// weatherBundle returns the hourly + daily weather payload for the market
// location, served from the freshness cache when possible. The weather
// endpoint is asked for one extra day so the daily outlook reaches past
// the marine horizon.
func (s *Service) weatherBundle(ctx context.Context, loc Location) (WeatherBundle, error) {
	key := loc.CacheKey(KindWeather)
	if cached, ok := s.weatherCache.Get(key); ok {
		return cached, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bundle, err := s.weather.FetchWeather(fetchCtx, loc, s.horizonDays+1)
	if err != nil {
		return WeatherBundle{}, fmt.Errorf("weather fetch for %s: %w", loc.Name, err)
	}
	s.weatherCache.Set(key, bundle)
	return bundle, nil
}

// CollectMarine fetches the marine series for every marine location
// concurrently. A failed fetch degrades only its own entry (Fetched=false);
// it never aborts the others. Results keep table order.
func (s *Service) CollectMarine(ctx context.Context) []LocationSeries {
	marine := make([]Location, 0, len(s.locations))
	for _, loc := range s.locations {
		if loc.Kind == KindMarine {
			marine = append(marine, loc)
		}
	}

	results := make([]LocationSeries, len(marine))
	var wg sync.WaitGroup
	for i, loc := range marine {
		i, loc := i, loc
		wg.Add(1)
		go func() {
			defer wg.Done()

			series, err := s.marineSeries(ctx, loc)
			if err != nil {
				log.Printf("marine fetch failed for %s: %v", loc.Name, err)
				results[i] = LocationSeries{Location: loc}
				return
			}
			results[i] = LocationSeries{Location: loc, Hourly: series, Fetched: true}
		}()
	}
	wg.Wait()
	return results
}

// Summaries builds the per-location day-summary matrix over the next
// horizonDays calendar dates starting today.
func (s *Service) Summaries(ctx context.Context, horizonDays int) []LocationSummary {
	if horizonDays <= 0 {
		horizonDays = s.horizonDays
	}
	today := s.today()
	return BuildDaySummaries(s.CollectMarine(ctx), today, horizonDays)
}

// WindReport builds the forward wind-risk series for the market location.
func (s *Service) WindReport(ctx context.Context, windowHours int) (WindReport, error) {
	if windowHours <= 0 {
		windowHours = s.windowHours
	}
	bundle, err := s.weatherBundle(ctx, MarketLocation())
	if err != nil {
		return WindReport{}, err
	}
	return BuildWindRiskSeries(bundle.Hourly, s.now().In(s.tz), windowHours), nil
}

// Demand returns the market demand advisory for today. An upstream
// failure normalizes to the "no data" sentinel, same as a missing entry.
func (s *Service) Demand(ctx context.Context) string {
	bundle, err := s.weatherBundle(ctx, MarketLocation())
	if err != nil {
		log.Printf("weather fetch failed for %s: %v", MarketLocation().Name, err)
		return DemandAdvisory(nil, s.today())
	}
	return DemandAdvisory(bundle.Daily, s.today())
}

// BuildDashboard assembles the complete view model for one render. Marine
// rows and the market column degrade independently; the call fails only
// when the render itself was cancelled.
func (s *Service) BuildDashboard(ctx context.Context, detailName string) (*Dashboard, error) {
	now := s.now().In(s.tz)
	today := s.today()

	detail, ok := FindLocation(detailName)
	if !ok {
		return nil, fmt.Errorf("unknown location %q", detailName)
	}

	series := s.CollectMarine(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db := &Dashboard{
		GeneratedAt: now,
		Matrix:      BuildDaySummaries(series, today, s.horizonDays),
		Market:      MarketLocation(),
		Advisory:    AdvisoryNoData,
	}
	for i := 0; i < s.horizonDays; i++ {
		db.Dates = append(db.Dates, today.AddDate(0, 0, i).Format("01/02"))
	}

	for _, ls := range series {
		if ls.Location.Name == detail.Name {
			db.Detail = ls
			break
		}
	}

	bundle, err := s.weatherBundle(ctx, db.Market)
	if err != nil {
		log.Printf("weather fetch failed for %s: %v", db.Market.Name, err)
		return db, nil
	}
	db.WeatherOK = true
	db.Wind = BuildWindRiskSeries(bundle.Hourly, now, s.windowHours)
	db.Advisory = DemandAdvisory(bundle.Daily, today)
	db.Outlook = bundle.Daily
	return db, nil
}

// DetailSeries returns the raw hourly series for one marine location,
// for the detail trend charts.
func (s *Service) DetailSeries(ctx context.Context, name string) (LocationSeries, error) {
	loc, ok := FindLocation(name)
	if !ok || loc.Kind != KindMarine {
		return LocationSeries{}, fmt.Errorf("unknown marine location %q", name)
	}
	series, err := s.marineSeries(ctx, loc)
	if err != nil {
		return LocationSeries{Location: loc}, err
	}
	return LocationSeries{Location: loc, Hourly: series, Fetched: true}, nil
}

// WarmCaches pre-fetches every location so interactive renders hit the
// freshness cache. Used by the scheduler; failures are logged and skipped.
func (s *Service) WarmCaches(ctx context.Context) {
	s.CollectMarine(ctx)
	if _, err := s.weatherBundle(ctx, MarketLocation()); err != nil {
		log.Printf("cache warm: weather fetch failed: %v", err)
	}
}

// today returns the current calendar date at midnight in the dashboard's
// operating time zone.
func (s *Service) today() time.Time {
	now := s.now().In(s.tz)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.tz)
}
