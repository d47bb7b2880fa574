package forecast

// SeaState is the qualitative wave-height category shown in the matrix.
type SeaState string

const (
	SeaUnknown SeaState = "unknown"
	SeaRough   SeaState = "rough"
	SeaCaution SeaState = "caution"
	SeaCalm    SeaState = "calm"
)

// SeaStateFor classifies an averaged wave height in metres. A nil average
// means no usable samples and maps to SeaUnknown. Thresholds are inclusive
// on the lower bound.
func SeaStateFor(avgWaveHeight *float64) SeaState {
	if avgWaveHeight == nil {
		return SeaUnknown
	}
	switch {
	case *avgWaveHeight >= 2.5:
		return SeaRough
	case *avgWaveHeight >= 1.5:
		return SeaCaution
	default:
		return SeaCalm
	}
}
