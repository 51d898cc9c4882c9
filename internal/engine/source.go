package engine

import (
	"strings"

	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/lookup"
)

// Source names containing any of these terms are treated as official.
var reliableSourceKeywords = []string{
	"ndma", "disaster management", "official", "verified",
	"government", "police", "fire department", "hospital",
	"red cross", "who", "health ministry", "meteorological",
}

// analyzeSource scores the claimed source. Reliability comes from the
// reputation lookup; badge and domain trust are reserved signals kept at
// their defaults until the identity service lands.
func analyzeSource(name string, reliability float64) verification.SourceCheck {
	check := verification.SourceCheck{
		HistoricalReliability: reliability,
		DomainTrust:           lookup.NeutralReliability,
	}

	lower := strings.ToLower(name)
	for _, keyword := range reliableSourceKeywords {
		if strings.Contains(lower, keyword) {
			check.IsOfficial = true
			break
		}
	}

	return check
}
