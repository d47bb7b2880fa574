package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func TestSeaStateThresholds(t *testing.T) {
	tests := []struct {
		name string
		avg  *float64
		want SeaState
	}{
		{"absent", nil, SeaUnknown},
		{"rough at threshold", fp(2.5), SeaRough},
		{"rough above", fp(4.0), SeaRough},
		{"caution at threshold", fp(1.5), SeaCaution},
		{"caution below rough", fp(2.49), SeaCaution},
		{"calm just below caution", fp(1.49), SeaCalm},
		{"calm", fp(0.3), SeaCalm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeaStateFor(tt.avg))
		})
	}
}
