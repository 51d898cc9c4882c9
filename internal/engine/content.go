package engine

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/suraksha-net/suraksha/internal/domain/verification"
)

// Static heuristic tables. Compiled once at init, read-only afterwards, and
// safe to share across concurrent verifications.
var (
	// Phrasings commonly seen in misinformation: urgency-to-forward,
	// conspiracy language, clickbait.
	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)urgent.*forward.*everyone`),
		regexp.MustCompile(`(?i)breaking.*news.*share`),
		regexp.MustCompile(`(?i)government.*hiding.*truth`),
		regexp.MustCompile(`(?i)miracle.*cure.*covid`),
		regexp.MustCompile(`(?i)fake.*vaccine`),
		regexp.MustCompile(`(?i)conspiracy`),
		regexp.MustCompile(`(?i)they.*don't.*want.*you.*to.*know`),
		regexp.MustCompile(`(?i)share.*before.*deleted`),
		regexp.MustCompile(`(?i)doctors.*hate.*this`),
		regexp.MustCompile(`(?i)secret.*government`),
	}

	emergencyKeywords = []string{
		"earthquake", "flood", "fire", "cyclone", "tsunami",
		"landslide", "emergency", "evacuation", "rescue",
		"medical emergency", "disaster", "alert", "warning",
	}

	emotionalKeywords = []string{
		"urgent", "immediately", "shocking", "unbelievable", "must share",
	}
)

// Per-signal accumulation steps.
const (
	suspiciousPatternStep = 0.2
	emergencyKeywordStep  = 0.1
	emotionalKeywordStep  = 0.15
)

// analyzeContent scores the alert body with the text heuristics. Accumulated
// signals may exceed 1; the aggregator clamps when folding them into the
// content sub-score.
func analyzeContent(content string) verification.ContentAnalysis {
	var analysis verification.ContentAnalysis

	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(content) {
			analysis.SuspiciousPatterns += suspiciousPatternStep
		}
	}

	lower := strings.ToLower(content)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lower, keyword) {
			analysis.EmergencyRelevance += emergencyKeywordStep
		}
	}

	analysis.LanguageQuality = languageQuality(content)

	for _, keyword := range emotionalKeywords {
		if strings.Contains(lower, keyword) {
			analysis.EmotionalManipulation += emotionalKeywordStep
		}
	}

	return analysis
}

// languageQuality penalizes unusually short or garbled tokens and excessive
// capitalization (shouting).
func languageQuality(content string) float64 {
	words := strings.Fields(content)
	if len(words) == 0 || len(content) == 0 {
		return 0
	}

	totalLen := 0
	for _, word := range words {
		totalLen += len(word)
	}
	avgWordLength := float64(totalLen) / float64(len(words))

	upper := 0
	for _, r := range content {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	capsRatio := float64(upper) / float64(len([]rune(content)))

	return math.Min(1, (avgWordLength/6)*(1-math.Min(2*capsRatio, 0.5)))
}
