package engine

import (
	"time"

	"github.com/suraksha-net/suraksha/internal/domain/verification"
)

// recentEventWindow is how old an alert may be and still count as recent.
const recentEventWindow = 24 * time.Hour

// analyzeTemporal scores recency and timeline plausibility. Consistency and
// timeline signals default to plausible; weather-pattern matching stays off
// until a weather service integration exists.
func analyzeTemporal(timestampMs int64, now time.Time) verification.TemporalAnalysis {
	age := now.Sub(time.UnixMilli(timestampMs))

	return verification.TemporalAnalysis{
		IsRecentEvent:           age < recentEventWindow,
		HasTemporalConsistency:  true,
		MatchesWeatherPatterns:  false,
		FollowsDisasterTimeline: true,
	}
}
