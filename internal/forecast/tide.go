package forecast

import (
	"math"
	"time"
)

// SynodicMonth is the mean length of a lunar month in days.
const SynodicMonth = 29.53059

// referenceNewMoon is the fixed new moon all moon ages are counted from.
var referenceNewMoon = time.Date(2000, time.January, 6, 0, 0, 0, 0, time.UTC)

// TidePhase is the qualitative tidal-range category derived from moon age.
type TidePhase string

const (
	TideSpring TidePhase = "spring-tide"
	TideMid    TidePhase = "mid-tide"
	TideNeap   TidePhase = "neap-tide"
	TideSlack  TidePhase = "slack-tide"
)

// tidePhaseTable maps a rounded moon age to its phase. Membership is by
// exact integer, not range comparison: a moon age rounding to 30 is still
// a spring tide. Ages 13, 27 and 28 are absent on purpose to match the
// tide calendar in production use and fall back to mid tide.
var tidePhaseTable = map[int]TidePhase{
	0: TideSpring, 1: TideSpring, 2: TideSpring, 14: TideSpring,
	15: TideSpring, 16: TideSpring, 29: TideSpring, 30: TideSpring,

	3: TideMid, 4: TideMid, 5: TideMid, 17: TideMid, 18: TideMid, 19: TideMid,

	6: TideNeap, 7: TideNeap, 8: TideNeap, 9: TideNeap,
	20: TideNeap, 21: TideNeap, 22: TideNeap, 23: TideNeap,

	10: TideSlack, 11: TideSlack, 12: TideSlack,
	24: TideSlack, 25: TideSlack, 26: TideSlack,
}

// MoonAge returns the moon age for a calendar date: whole days elapsed
// since the reference new moon, modulo the synodic month, rounded to one
// decimal place. The result is always in [0, SynodicMonth).
func MoonAge(date time.Time) float64 {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	days := math.Floor(day.Sub(referenceNewMoon).Hours() / 24)
	age := math.Mod(days, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	return math.Round(age*10) / 10
}

// TidePhaseFor classifies a moon age, rounded to the nearest integer,
// into a tide phase. Unmapped ages resolve to mid tide.
func TidePhaseFor(moonAge float64) TidePhase {
	if phase, ok := tidePhaseTable[int(math.Round(moonAge))]; ok {
		return phase
	}
	return TideMid
}
