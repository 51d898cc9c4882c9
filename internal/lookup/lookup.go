// Package lookup defines the external data capabilities the trust-scoring
// engine depends on. Production deployments back these interfaces with real
// reputation, geospatial and authority-feed services; the registry
// implementations in this package are the documented substitution points.
package lookup

import (
	"context"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
)

// ReputationLookup resolves a source's historical reliability in [0, 1].
type ReputationLookup interface {
	HistoricalReliability(ctx context.Context, sourceID string) (float64, error)
}

// DisasterZoneLookup checks whether a coordinate falls inside a known
// disaster zone.
type DisasterZoneLookup interface {
	IsKnownDisasterZone(ctx context.Context, lat, lng float64) (bool, error)
}

// CrossRefResult is the outcome of checking an alert against authoritative
// feeds.
type CrossRefResult struct {
	Found          bool
	Contradicted   bool
	SimilarCount   int
	SourcesChecked []string
}

// FeedLookup cross-references an alert against authoritative alert feeds.
type FeedLookup interface {
	CrossReference(ctx context.Context, a *alert.EmergencyAlert) (CrossRefResult, error)
}

// NeutralReliability is the reliability assumed for a source with no
// recorded history.
const NeutralReliability = 0.5
