package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/suraksha-net/suraksha/internal/domain/verification"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "below range", in: -0.5, want: 0},
		{name: "lower bound", in: 0, want: 0},
		{name: "in range", in: 0.42, want: 0.42},
		{name: "upper bound", in: 1, want: 1},
		{name: "above range", in: 1.7, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.in); got != tt.want {
				t.Errorf("clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeTrustScore(t *testing.T) {
	tests := []struct {
		name         string
		breakdown    verification.Breakdown
		wantContent  float64
		wantSource   float64
		wantLocation float64
		wantTemporal float64
		wantCrossRef float64
		wantOverall  float64
	}{
		{
			name: "strong signals across the board",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{
					EmergencyRelevance: 0.5,
					LanguageQuality:    0.9,
				},
				Source: verification.SourceCheck{
					IsOfficial:            true,
					HasVerificationBadge:  true,
					HistoricalReliability: 0.9,
				},
				Location: verification.LocationCheck{
					IsValidCoordinates:  true,
					IsKnownDisasterZone: true,
					PopulationDensity:   0.5,
				},
				Temporal: verification.TemporalAnalysis{
					IsRecentEvent:          true,
					HasTemporalConsistency: true,
					MatchesWeatherPatterns: true,
				},
				CrossReference: verification.CrossReference{
					FoundInOfficialSources: true,
					SimilarAlertsCount:     5,
				},
			},
			wantContent:  0.77,
			wantSource:   0.96,
			wantLocation: 0.9,
			wantTemporal: 1,
			wantCrossRef: 1,
			wantOverall:  0.881,
		},
		{
			name: "over-accumulated content signals clamp to zero",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{
					SuspiciousPatterns:    2.0,
					EmotionalManipulation: 1.5,
				},
			},
			wantContent:  0,
			wantSource:   0,
			wantLocation: 0,
			wantTemporal: 0,
			wantCrossRef: 0.2,
			wantOverall:  0.01,
		},
		{
			name: "contradiction outweighs similar alerts",
			breakdown: verification.Breakdown{
				CrossReference: verification.CrossReference{
					ContradictedByOfficialSources: true,
					SimilarAlertsCount:            2,
				},
			},
			wantContent:  0.3, // (1-0)*0.2 + (1-0)*0.1
			wantSource:   0,
			wantLocation: 0,
			wantTemporal: 0,
			wantCrossRef: 0, // -0.4 + 0.2 clamps to 0
			wantOverall:  0.12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeTrustScore(tt.breakdown)

			if !almostEqual(got.Content, tt.wantContent) {
				t.Errorf("Content = %v, want %v", got.Content, tt.wantContent)
			}
			if !almostEqual(got.Source, tt.wantSource) {
				t.Errorf("Source = %v, want %v", got.Source, tt.wantSource)
			}
			if !almostEqual(got.Location, tt.wantLocation) {
				t.Errorf("Location = %v, want %v", got.Location, tt.wantLocation)
			}
			if !almostEqual(got.Temporal, tt.wantTemporal) {
				t.Errorf("Temporal = %v, want %v", got.Temporal, tt.wantTemporal)
			}
			if !almostEqual(got.CrossReference, tt.wantCrossRef) {
				t.Errorf("CrossReference = %v, want %v", got.CrossReference, tt.wantCrossRef)
			}
			if !almostEqual(got.Overall, tt.wantOverall) {
				t.Errorf("Overall = %v, want %v", got.Overall, tt.wantOverall)
			}
			if got.Overall < 0 || got.Overall > 1 {
				t.Errorf("Overall = %v, want in [0, 1]", got.Overall)
			}
		})
	}
}

func TestDeriveFlags(t *testing.T) {
	tests := []struct {
		name      string
		breakdown verification.Breakdown
		want      []string
	}{
		{
			name: "clean official alert",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{EmergencyRelevance: 0.3},
				Source:  verification.SourceCheck{IsOfficial: true},
			},
			want: nil,
		},
		{
			name: "suspicious content above threshold",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{
					SuspiciousPatterns: 0.4,
					EmergencyRelevance: 0.3,
				},
				Source: verification.SourceCheck{IsOfficial: true},
			},
			want: []string{verification.FlagSuspiciousContent},
		},
		{
			name: "threshold boundaries are exclusive",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{
					SuspiciousPatterns:    0.3,
					EmotionalManipulation: 0.4,
					EmergencyRelevance:    0.2,
				},
				Source: verification.SourceCheck{IsOfficial: true},
			},
			want: nil,
		},
		{
			name: "official source never flagged unreliable",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{EmergencyRelevance: 0.3},
				Source: verification.SourceCheck{
					IsOfficial:            true,
					HistoricalReliability: 0.1,
				},
			},
			want: nil,
		},
		{
			name: "unofficial low-reliability source",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{EmergencyRelevance: 0.3},
				Source:  verification.SourceCheck{HistoricalReliability: 0.2},
			},
			want: []string{verification.FlagUnreliableSource},
		},
		{
			name: "all flags in fixed order",
			breakdown: verification.Breakdown{
				Content: verification.ContentAnalysis{
					SuspiciousPatterns:    0.6,
					EmotionalManipulation: 0.45,
					EmergencyRelevance:    0.1,
				},
				Source: verification.SourceCheck{HistoricalReliability: 0.3},
			},
			want: []string{
				verification.FlagSuspiciousContent,
				verification.FlagEmotionalManipulation,
				verification.FlagUnreliableSource,
				verification.FlagLowEmergencyRelevance,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveFlags(tt.breakdown)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("deriveFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildReasoning(t *testing.T) {
	tests := []struct {
		name  string
		score verification.TrustScore
		want  string
	}{
		{
			name:  "high confidence",
			score: verification.TrustScore{Overall: 0.85, Source: 0.9},
			want:  "High confidence based on reliable source and consistent content",
		},
		{
			name:  "moderate confidence",
			score: verification.TrustScore{Overall: 0.65, Source: 0.5},
			want:  "Moderate confidence with some verification concerns",
		},
		{
			name: "low confidence with callouts",
			score: verification.TrustScore{
				Overall: 0.3,
				Source:  0.2,
				Breakdown: verification.Breakdown{
					Content: verification.ContentAnalysis{SuspiciousPatterns: 0.4},
				},
			},
			want: "Low confidence due to multiple verification issues. " +
				"Source reliability is questionable. " +
				"Content contains patterns commonly found in misinformation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildReasoning(tt.score); got != tt.want {
				t.Errorf("buildReasoning() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		score     verification.TrustScore
		threshold float64
		want      []string
	}{
		{
			name:      "low score",
			score:     verification.TrustScore{Overall: 0.3, Source: 0.2},
			threshold: 0.70,
			want: []string{
				"Verify with official sources before sharing",
				"Look for corroborating reports from reliable news sources",
				"Check the credibility of the information source",
				"Report suspicious content to help improve community safety",
			},
		},
		{
			name:      "verified score",
			score:     verification.TrustScore{Overall: 0.85, Source: 0.9},
			threshold: 0.70,
			want: []string{
				"Information appears reliable but always cross-verify emergency alerts",
				"Report suspicious content to help improve community safety",
			},
		},
		{
			name:      "middling score only gets the report advisory",
			score:     verification.TrustScore{Overall: 0.6, Source: 0.5},
			threshold: 0.70,
			want: []string{
				"Report suspicious content to help improve community safety",
			},
		},
		{
			name:      "custom threshold changes the reliable cutoff",
			score:     verification.TrustScore{Overall: 0.6, Source: 0.5},
			threshold: 0.55,
			want: []string{
				"Information appears reliable but always cross-verify emergency alerts",
				"Report suspicious content to help improve community safety",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildRecommendations(tt.score, tt.threshold)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildRecommendations() = %v, want %v", got, tt.want)
			}
			if len(got) == 0 || !strings.Contains(got[len(got)-1], "Report suspicious content") {
				t.Errorf("buildRecommendations() missing closing report advisory: %v", got)
			}
		})
	}
}
