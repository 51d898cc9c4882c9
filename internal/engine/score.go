package engine

import (
	"math"
	"strings"

	"github.com/suraksha-net/suraksha/internal/domain/verification"
)

// Per-signal weights of the composite trust score. These are fixed design
// constants carried over from the product heuristics; they are not derived
// from calibration data.
const (
	WeightContent        = 0.4
	WeightSource         = 0.3
	WeightLocation       = 0.15
	WeightTemporal       = 0.1
	WeightCrossReference = 0.05

	// DefaultVerifiedThreshold classifies an alert as verified when the
	// composite score reaches it.
	DefaultVerifiedThreshold = 0.70
)

// Flag thresholds on raw analyzer signals.
const (
	suspiciousContentThreshold  = 0.3
	emotionalManipulationThresh = 0.4
	unreliableSourceThreshold   = 0.4
	lowRelevanceThreshold       = 0.2
)

// questionableSourceScore marks the source sub-score below which reasoning
// and recommendations call the source out.
const questionableSourceScore = 0.4

// clamp bounds a score to [0, 1].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// boolScore converts a boolean signal to its weight contribution.
func boolScore(b bool, weight float64) float64 {
	if b {
		return weight
	}
	return 0
}

// computeTrustScore folds the analyzer breakdown into the five clamped
// sub-scores and the weighted composite.
func computeTrustScore(b verification.Breakdown) verification.TrustScore {
	content := clamp(
		b.Content.EmergencyRelevance*0.4 +
			b.Content.LanguageQuality*0.3 +
			(1-b.Content.SuspiciousPatterns)*0.2 +
			(1-b.Content.EmotionalManipulation)*0.1)

	source := clamp(
		boolScore(b.Source.IsOfficial, 0.4) +
			boolScore(b.Source.HasVerificationBadge, 0.2) +
			b.Source.HistoricalReliability*0.4)

	location := clamp(
		boolScore(b.Location.IsValidCoordinates, 0.5) +
			boolScore(b.Location.IsKnownDisasterZone, 0.3) +
			b.Location.PopulationDensity*0.2)

	temporal := clamp(
		boolScore(b.Temporal.IsRecentEvent, 0.4) +
			boolScore(b.Temporal.HasTemporalConsistency, 0.3) +
			boolScore(b.Temporal.MatchesWeatherPatterns, 0.3))

	crossRefContra := 0.2
	if b.CrossReference.ContradictedByOfficialSources {
		crossRefContra = -0.4
	}
	crossReference := clamp(
		boolScore(b.CrossReference.FoundInOfficialSources, 0.6) +
			crossRefContra +
			math.Min(float64(b.CrossReference.SimilarAlertsCount)/10, 0.2))

	overall := clamp(
		content*WeightContent +
			source*WeightSource +
			location*WeightLocation +
			temporal*WeightTemporal +
			crossReference*WeightCrossReference)

	return verification.TrustScore{
		Overall:        overall,
		Content:        content,
		Source:         source,
		Location:       location,
		Temporal:       temporal,
		CrossReference: crossReference,
		Breakdown:      b,
	}
}

// deriveFlags raises risk flags from the raw analyzer signals. Order is
// fixed; a result may carry zero or more.
func deriveFlags(b verification.Breakdown) []string {
	var flags []string

	if b.Content.SuspiciousPatterns > suspiciousContentThreshold {
		flags = append(flags, verification.FlagSuspiciousContent)
	}

	if b.Content.EmotionalManipulation > emotionalManipulationThresh {
		flags = append(flags, verification.FlagEmotionalManipulation)
	}

	if !b.Source.IsOfficial && b.Source.HistoricalReliability < unreliableSourceThreshold {
		flags = append(flags, verification.FlagUnreliableSource)
	}

	if b.Content.EmergencyRelevance < lowRelevanceThreshold {
		flags = append(flags, verification.FlagLowEmergencyRelevance)
	}

	return flags
}

// buildReasoning joins the tiered confidence statement with any signal
// callouts into one summary.
func buildReasoning(score verification.TrustScore) string {
	var reasons []string

	switch {
	case score.Overall >= 0.8:
		reasons = append(reasons, "High confidence based on reliable source and consistent content")
	case score.Overall >= 0.6:
		reasons = append(reasons, "Moderate confidence with some verification concerns")
	default:
		reasons = append(reasons, "Low confidence due to multiple verification issues")
	}

	if score.Source < questionableSourceScore {
		reasons = append(reasons, "Source reliability is questionable")
	}

	if score.Breakdown.Content.SuspiciousPatterns > suspiciousContentThreshold {
		reasons = append(reasons, "Content contains patterns commonly found in misinformation")
	}

	return strings.Join(reasons, ". ")
}

// buildRecommendations derives advisory actions from the trust score. Order
// is fixed; the closing report advisory is always present.
func buildRecommendations(score verification.TrustScore, threshold float64) []string {
	var recommendations []string

	if score.Overall < 0.5 {
		recommendations = append(recommendations,
			"Verify with official sources before sharing",
			"Look for corroborating reports from reliable news sources")
	}

	if score.Source < questionableSourceScore {
		recommendations = append(recommendations,
			"Check the credibility of the information source")
	}

	if score.Overall >= threshold {
		recommendations = append(recommendations,
			"Information appears reliable but always cross-verify emergency alerts")
	}

	recommendations = append(recommendations,
		"Report suspicious content to help improve community safety")

	return recommendations
}
