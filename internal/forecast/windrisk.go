package forecast

import "fmt"

// WindRisk is the risk band for a wind speed, used for per-cell
// highlighting and the rolled-up 24h banner.
type WindRisk string

const (
	WindHigh     WindRisk = "high"
	WindModerate WindRisk = "moderate"
	WindLow      WindRisk = "low"
)

// WindRiskFor bands a wind speed in m/s. Thresholds are inclusive on the
// lower bound.
func WindRiskFor(speedMS float64) WindRisk {
	switch {
	case speedMS >= 10:
		return WindHigh
	case speedMS >= 5:
		return WindModerate
	default:
		return WindLow
	}
}

// WindBanner renders the summary banner for the maximum wind speed over
// the forward window, one fixed template per risk band.
func WindBanner(maxSpeedMS float64) string {
	switch WindRiskFor(maxSpeedMS) {
	case WindHigh:
		return fmt.Sprintf("strong wind warning: up to %.1f m/s over the next 24h", maxSpeedMS)
	case WindModerate:
		return fmt.Sprintf("breezy: up to %.1f m/s over the next 24h", maxSpeedMS)
	default:
		return fmt.Sprintf("calm conditions: up to %.1f m/s over the next 24h", maxSpeedMS)
	}
}
