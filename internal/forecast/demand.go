package forecast

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Sentinels returned by DemandAdvisory when there is nothing to report.
const (
	AdvisoryNoData         = "no data"
	AdvisoryNothingNotable = "nothing notable"
)

// DemandAdvisory derives a short advisory for the target market from
// today's daily forecast entry. Today is caller-supplied so the heuristic
// stays testable without a wall clock. Checks run temperature first, then
// precipitation; triggered reasons join with " / ".
func DemandAdvisory(daily []DailyEntry, today time.Time) string {
	key := today.Format("2006-01-02")

	for _, entry := range daily {
		if entry.Date != key {
			continue
		}

		var reasons []string
		if entry.TempMax != nil && *entry.TempMax < 10 {
			reasons = append(reasons, "temperature drop (hot-pot demand)")
		}
		if entry.PrecipProbMax != nil && *entry.PrecipProbMax >= 50 {
			reasons = append(reasons, fmt.Sprintf("rain %d%% (foot-traffic risk)", int(math.Round(*entry.PrecipProbMax))))
		}

		if len(reasons) == 0 {
			return AdvisoryNothingNotable
		}
		return strings.Join(reasons, " / ")
	}

	return AdvisoryNoData
}
