package engine

import (
	"sort"

	"github.com/suraksha-net/suraksha/internal/domain/verification"
)

// ComputeStats summarizes a collection of verification results. Flags are
// sorted by frequency, descending, with ties kept in first-seen order.
func ComputeStats(results []*verification.Result) *verification.Stats {
	stats := &verification.Stats{
		Total:       len(results),
		CommonFlags: []verification.FlagCount{},
	}
	if len(results) == 0 {
		return stats
	}

	var scoreSum, timeSum float64
	flagCounts := make(map[string]int)
	var flagOrder []string

	for _, r := range results {
		if r.IsVerified {
			stats.Verified++
		}
		if len(r.Flags) > 0 {
			stats.Flagged++
		}
		scoreSum += r.TrustScore.Overall
		timeSum += float64(r.ProcessingTime)

		for _, f := range r.Flags {
			if _, seen := flagCounts[f]; !seen {
				flagOrder = append(flagOrder, f)
			}
			flagCounts[f]++
		}
	}

	stats.VerificationRate = float64(stats.Verified) / float64(stats.Total)
	stats.AvgTrustScore = scoreSum / float64(stats.Total)
	stats.AvgProcessingTime = timeSum / float64(stats.Total)

	for _, f := range flagOrder {
		stats.CommonFlags = append(stats.CommonFlags, verification.FlagCount{
			Flag:  f,
			Count: flagCounts[f],
		})
	}
	sort.SliceStable(stats.CommonFlags, func(i, j int) bool {
		return stats.CommonFlags[i].Count > stats.CommonFlags[j].Count
	})

	return stats
}
