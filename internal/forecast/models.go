package forecast

import (
	"fmt"
	"time"
)

// LocationKind distinguishes which upstream endpoint serves a location.
type LocationKind string

const (
	KindMarine  LocationKind = "marine"
	KindWeather LocationKind = "weather"
)

// Location is a logical place for which forecasts are fetched.
// Locations are defined once in the static table (locations.go) and never
// mutated at runtime.
type Location struct {
	Name string       `json:"name"`
	Lat  float64      `json:"lat"`
	Lon  float64      `json:"lon"`
	Kind LocationKind `json:"kind"`
}

// CacheKey returns a canonical string key for indexing this location's
// payloads in the freshness cache: coordinates plus data kind.
func (l Location) CacheKey(kind LocationKind) string {
	return fmt.Sprintf("%.2f,%.2f:%s", l.Lat, l.Lon, kind)
}

// HourlySample is one timestamped upstream sample. Fields are pointers
// because any value may be null upstream; nil samples are excluded from
// aggregation, never treated as zero.
type HourlySample struct {
	Time          time.Time `json:"time"`
	WaveHeight    *float64  `json:"waveHeight,omitempty"`
	WindSpeed     *float64  `json:"windSpeedMs,omitempty"`
	WindDirection *float64  `json:"windDirectionDeg,omitempty"`
	Temperature   *float64  `json:"temperatureC,omitempty"`
	Precipitation *float64  `json:"precipitationMm,omitempty"`
}

// HourlySeries is an ordered sequence of hourly samples.
type HourlySeries []HourlySample

// DailyEntry is one per-day aggregate from the weather endpoint,
// keyed by calendar date string (YYYY-MM-DD).
type DailyEntry struct {
	Date          string   `json:"date"`
	TempMax       *float64 `json:"tempMaxC,omitempty"`
	TempMin       *float64 `json:"tempMinC,omitempty"`
	PrecipSum     *float64 `json:"precipSumMm,omitempty"`
	PrecipProbMax *float64 `json:"precipProbMaxPct,omitempty"`
}

// WeatherBundle is the combined hourly + daily payload of the weather endpoint.
type WeatherBundle struct {
	Hourly HourlySeries `json:"hourly"`
	Daily  []DailyEntry `json:"daily"`
}

// CellState is the per-date outcome of a marine day summary. The three
// degraded states are distinct and all user-visible: a day whose samples
// are all null, a day the series does not cover, and a location whose
// fetch failed outright.
type CellState string

const (
	CellOK          CellState = "ok"
	CellNoData      CellState = "no data"
	CellNoCoverage  CellState = "no coverage"
	CellFetchFailed CellState = "fetch failed"
)

// DaySummary is the derived summary for one location and one calendar date.
type DaySummary struct {
	Date          string    `json:"date"`
	State         CellState `json:"state"`
	AvgWaveHeight *float64  `json:"avgWaveHeightM,omitempty"`
	SeaState      SeaState  `json:"seaState,omitempty"`
	MoonAge       float64   `json:"moonAge,omitempty"`
	TidePhase     TidePhase `json:"tidePhase,omitempty"`
}

// Label renders the summary as a single matrix-cell string.
func (s DaySummary) Label() string {
	if s.State != CellOK {
		return string(s.State)
	}
	return fmt.Sprintf("%s %.1fm (%s, moon %.1f)", s.SeaState, *s.AvgWaveHeight, s.TidePhase, s.MoonAge)
}

// LocationSeries pairs a location with its raw hourly series.
// Fetched is false when the upstream fetch failed for this location,
// in which case Hourly is nil.
type LocationSeries struct {
	Location Location     `json:"location"`
	Hourly   HourlySeries `json:"hourly,omitempty"`
	Fetched  bool         `json:"fetched"`
}

// LocationSummary is one matrix row: a location and its per-date summaries
// in chronological order.
type LocationSummary struct {
	Location Location     `json:"location"`
	Days     []DaySummary `json:"days"`
}

// WindRiskEntry pairs one hourly sample inside the forward window with
// its risk band. SpeedMS is rounded to one decimal.
type WindRiskEntry struct {
	Time    time.Time `json:"time"`
	Label   string    `json:"label"`
	SpeedMS float64   `json:"speedMs"`
	Risk    WindRisk  `json:"risk"`
}

// WindReport is the wind-risk series for the forward window plus the
// rolled-up maximum used for the summary banner.
type WindReport struct {
	Entries  []WindRiskEntry `json:"entries"`
	MaxSpeed float64         `json:"maxSpeedMs"`
	HasData  bool            `json:"hasData"`
	Banner   string          `json:"banner,omitempty"`
}

// Dashboard is the full per-render view model consumed by the display surface.
type Dashboard struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Matrix      []LocationSummary `json:"matrix"`
	Dates       []string          `json:"dates"`
	Detail      LocationSeries    `json:"detail"`
	Market      Location          `json:"market"`
	WeatherOK   bool              `json:"weatherOk"`
	Wind        WindReport        `json:"wind"`
	Advisory    string            `json:"advisory"`
	Outlook     []DailyEntry      `json:"outlook"`
}
