package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aggToday = time.Date(2025, time.November, 7, 0, 0, 0, 0, time.UTC)

func hourlyAt(day, hour int, wave *float64) HourlySample {
	return HourlySample{
		Time:       aggToday.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour),
		WaveHeight: wave,
	}
}

func TestBuildDaySummariesAveragesPresentValuesOnly(t *testing.T) {
	series := []LocationSeries{{
		Location: Location{Name: "Chiba Katsuura", Kind: KindMarine},
		Hourly: HourlySeries{
			hourlyAt(0, 0, fp(1.0)),
			hourlyAt(0, 6, fp(2.0)),
			hourlyAt(0, 12, nil),
			hourlyAt(0, 18, fp(3.0)),
		},
		Fetched: true,
	}}

	rows := BuildDaySummaries(series, aggToday, 1)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Days, 1)

	day := rows[0].Days[0]
	assert.Equal(t, CellOK, day.State)
	require.NotNil(t, day.AvgWaveHeight)
	assert.InDelta(t, 2.0, *day.AvgWaveHeight, 1e-9)
	assert.Equal(t, SeaCaution, day.SeaState)
	assert.Equal(t, MoonAge(aggToday), day.MoonAge)
	assert.Equal(t, TidePhaseFor(day.MoonAge), day.TidePhase)
}

func TestBuildDaySummariesDistinguishesDegradedStates(t *testing.T) {
	series := []LocationSeries{{
		Location: Location{Name: "Tokushima", Kind: KindMarine},
		Hourly: HourlySeries{
			hourlyAt(0, 3, fp(0.8)),
			hourlyAt(0, 9, fp(1.2)),
			// day 1 has samples but every wave height is null
			hourlyAt(1, 3, nil),
			hourlyAt(1, 9, nil),
			// day 2 has no samples at all
		},
		Fetched: true,
	}}

	rows := BuildDaySummaries(series, aggToday, 3)
	require.Len(t, rows, 1)
	days := rows[0].Days
	require.Len(t, days, 3)

	assert.Equal(t, CellOK, days[0].State)
	assert.Equal(t, CellNoData, days[1].State)
	assert.Equal(t, CellNoCoverage, days[2].State)
	assert.NotEqual(t, days[1].State, days[2].State)
}

func TestBuildDaySummariesFetchFailureDegradesWholeRow(t *testing.T) {
	series := []LocationSeries{
		{Location: Location{Name: "Fukuoka Hakata", Kind: KindMarine}},
		{
			Location: Location{Name: "Toyama Uozu", Kind: KindMarine},
			Hourly:   HourlySeries{hourlyAt(0, 0, fp(2.6))},
			Fetched:  true,
		},
	}

	rows := BuildDaySummaries(series, aggToday, 3)
	require.Len(t, rows, 2)

	for _, day := range rows[0].Days {
		assert.Equal(t, CellFetchFailed, day.State)
	}
	// The failed row must not affect its neighbour.
	assert.Equal(t, CellOK, rows[1].Days[0].State)
	assert.Equal(t, SeaRough, rows[1].Days[0].SeaState)
}

func TestBuildDaySummariesSkipsWeatherLocations(t *testing.T) {
	series := []LocationSeries{
		{Location: Location{Name: "Tokyo", Kind: KindWeather}, Fetched: true},
	}
	assert.Empty(t, BuildDaySummaries(series, aggToday, 3))
}

func TestBuildWindRiskSeriesWindowAndMaximum(t *testing.T) {
	now := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)

	var hourly HourlySeries
	// two stale samples that must be excluded despite huge speeds
	hourly = append(hourly, HourlySample{Time: now.Add(-2 * time.Hour), WindSpeed: fp(99)})
	hourly = append(hourly, HourlySample{Time: now.Add(-1 * time.Hour), WindSpeed: fp(99)})
	for i := 0; i < 30; i++ {
		speed := float64(i % 13)
		hourly = append(hourly, HourlySample{Time: now.Add(time.Duration(i) * time.Hour), WindSpeed: fp(speed)})
	}

	report := BuildWindRiskSeries(hourly, now, 24)
	require.Len(t, report.Entries, 24)
	assert.True(t, report.HasData)

	// First 24 samples cover i=0..23, so the true maximum is 12.
	assert.Equal(t, 12.0, report.MaxSpeed)
	assert.Equal(t, "strong wind warning: up to 12.0 m/s over the next 24h", report.Banner)

	// Entries stay chronological and carry their band.
	for i := 1; i < len(report.Entries); i++ {
		assert.True(t, report.Entries[i].Time.After(report.Entries[i-1].Time))
	}
	assert.Equal(t, WindLow, report.Entries[0].Risk)
	assert.Equal(t, WindHigh, report.Entries[12].Risk)
}

func TestBuildWindRiskSeriesRoundsToOneDecimal(t *testing.T) {
	now := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	hourly := HourlySeries{{Time: now, WindSpeed: fp(3.14159)}}

	report := BuildWindRiskSeries(hourly, now, 24)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, 3.1, report.Entries[0].SpeedMS)
	assert.Equal(t, "12:00", report.Entries[0].Label)
}

func TestBuildWindRiskSeriesSkipsNullSpeeds(t *testing.T) {
	now := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	hourly := HourlySeries{
		{Time: now, WindSpeed: nil},
		{Time: now.Add(time.Hour), WindSpeed: fp(4.0)},
	}

	report := BuildWindRiskSeries(hourly, now, 24)
	require.Len(t, report.Entries, 1)
	assert.Equal(t, 4.0, report.MaxSpeed)
}

func TestBuildWindRiskSeriesEmpty(t *testing.T) {
	now := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	report := BuildWindRiskSeries(nil, now, 24)
	assert.False(t, report.HasData)
	assert.Empty(t, report.Entries)
	assert.Empty(t, report.Banner)
}
