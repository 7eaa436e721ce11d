package services

import (
	"math"

	types "github.com/torvund/wildskills-backend/internal/domain"
)

// LevelFromStats reduces a user's aggregated history to a single difficulty
// level. Quiz performance dominates (weight 0.4); completed lessons and
// scenario attempts contribute 0.3 each. The result is floored and
// deliberately unclamped: a user with no history lands at level 0, which
// keeps recommendations at the easiest tier (difficulty <= 1).
func LevelFromStats(stats *types.ProgressStats) int {
	if stats == nil {
		return 0
	}
	raw := 0.4*stats.AvgQuizScore +
		0.3*float64(stats.CompletedLessons) +
		0.3*float64(stats.CompletedScenarios)
	return int(math.Floor(raw))
}
