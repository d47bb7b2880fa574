package forecast

import (
	"math"
	"time"
)

const (
	// DefaultHorizonDays is how many calendar dates the matrix covers.
	DefaultHorizonDays = 3
	// DefaultWindWindowHours is the forward-looking wind-risk window.
	DefaultWindWindowHours = 24
)

// BuildDaySummaries produces one matrix row per marine location: for each
// of the next horizonDays calendar dates starting at today, the averaged
// wave height with its sea state, moon age and tide phase. A location whose
// fetch failed degrades every date of its row to CellFetchFailed; dates the
// series does not reach degrade to CellNoCoverage; dates with samples but
// only null wave heights degrade to CellNoData. A degraded row never
// affects the others.
func BuildDaySummaries(series []LocationSeries, today time.Time, horizonDays int) []LocationSummary {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	rows := make([]LocationSummary, 0, len(series))
	for _, ls := range series {
		if ls.Location.Kind != KindMarine {
			continue
		}

		row := LocationSummary{Location: ls.Location, Days: make([]DaySummary, 0, horizonDays)}
		for i := 0; i < horizonDays; i++ {
			date := today.AddDate(0, 0, i)
			if !ls.Fetched {
				row.Days = append(row.Days, DaySummary{Date: date.Format("2006-01-02"), State: CellFetchFailed})
				continue
			}
			row.Days = append(row.Days, summarizeDay(ls.Hourly, date))
		}
		rows = append(rows, row)
	}
	return rows
}

// summarizeDay averages the present wave heights of the samples falling on
// the given calendar date. Null samples are excluded from both the sum and
// the divisor.
func summarizeDay(hourly HourlySeries, date time.Time) DaySummary {
	key := date.Format("2006-01-02")
	summary := DaySummary{Date: key}

	var (
		sum     float64
		count   int
		covered bool
	)
	for _, s := range hourly {
		if s.Time.In(date.Location()).Format("2006-01-02") != key {
			continue
		}
		covered = true
		if s.WaveHeight == nil {
			continue
		}
		sum += *s.WaveHeight
		count++
	}

	switch {
	case !covered:
		summary.State = CellNoCoverage
	case count == 0:
		summary.State = CellNoData
	default:
		avg := sum / float64(count)
		age := MoonAge(date)
		summary.State = CellOK
		summary.AvgWaveHeight = &avg
		summary.SeaState = SeaStateFor(&avg)
		summary.MoonAge = age
		summary.TidePhase = TidePhaseFor(age)
	}
	return summary
}

// BuildWindRiskSeries filters the hourly series to samples at or after now
// with a present wind speed, keeps the first windowHours in chronological
// order, rounds each speed to one decimal and attaches its risk band. The
// report also carries the maximum speed in the window for the banner.
func BuildWindRiskSeries(hourly HourlySeries, now time.Time, windowHours int) WindReport {
	if windowHours <= 0 {
		windowHours = DefaultWindWindowHours
	}

	var report WindReport
	for _, s := range hourly {
		if len(report.Entries) >= windowHours {
			break
		}
		if s.Time.Before(now) || s.WindSpeed == nil {
			continue
		}

		speed := math.Round(*s.WindSpeed*10) / 10
		report.Entries = append(report.Entries, WindRiskEntry{
			Time:    s.Time,
			Label:   s.Time.Format("15:04"),
			SpeedMS: speed,
			Risk:    WindRiskFor(speed),
		})
		if !report.HasData || speed > report.MaxSpeed {
			report.MaxSpeed = speed
			report.HasData = true
		}
	}

	if report.HasData {
		report.Banner = WindBanner(report.MaxSpeed)
	}
	return report
}
