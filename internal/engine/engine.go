// Package engine implements the alert trust-scoring engine: five analyzers
// (content, source, location, temporal, cross-reference) feeding one
// aggregator that produces a verification verdict, a multi-factor trust
// score, risk flags, reasoning and recommendations.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/lookup"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/pkg/metrics"
)

// Config contains engine tunables.
type Config struct {
	// VerifiedThreshold classifies an alert as verified when the composite
	// score reaches it.
	VerifiedThreshold float64

	// BatchConcurrency bounds how many alerts a batch verifies at once.
	BatchConcurrency int

	// LookupTimeout bounds each external lookup within one verification.
	LookupTimeout time.Duration
}

// Engine scores alerts. It holds no per-call state; the heuristic tables it
// reads are process-wide and immutable, so one Engine serves concurrent
// verifications without synchronization.
type Engine struct {
	reputation    lookup.ReputationLookup
	zones         lookup.DisasterZoneLookup
	feeds         lookup.FeedLookup
	threshold     float64
	batchLimit    int
	lookupTimeout time.Duration
	logger        *logger.Logger
	now           func() time.Time
}

// New creates a trust-scoring engine over the given lookup collaborators.
func New(rep lookup.ReputationLookup, zones lookup.DisasterZoneLookup, feeds lookup.FeedLookup, cfg Config, log *logger.Logger) *Engine {
	threshold := cfg.VerifiedThreshold
	if threshold == 0 {
		threshold = DefaultVerifiedThreshold
	}
	batchLimit := cfg.BatchConcurrency
	if batchLimit < 1 {
		batchLimit = 8
	}
	lookupTimeout := cfg.LookupTimeout
	if lookupTimeout == 0 {
		lookupTimeout = 2 * time.Second
	}

	return &Engine{
		reputation:    rep,
		zones:         zones,
		feeds:         feeds,
		threshold:     threshold,
		batchLimit:    batchLimit,
		lookupTimeout: lookupTimeout,
		logger:        log,
		now:           time.Now,
	}
}

// Verify scores one alert. It never returns an error: lookup failures
// resolve to conservative defaults and internal failures produce the
// terminal error result.
func (e *Engine) Verify(ctx context.Context, a *alert.EmergencyAlert) (result *verification.Result) {
	start := e.now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(map[string]interface{}{
				"alert_id": a.ID,
				"panic":    fmt.Sprintf("%v", r),
			}).Error("Verification failed")
			result = e.errorResult(a.ID)
		}
	}()

	if ctx.Err() != nil {
		return e.errorResult(a.ID)
	}

	breakdown := e.analyze(ctx, a)
	score := computeTrustScore(breakdown)
	flags := deriveFlags(breakdown)
	processing := e.now().Sub(start)

	result = &verification.Result{
		ID:              "verification_" + uuid.New().String(),
		AlertID:         a.ID,
		IsVerified:      score.Overall >= e.threshold,
		TrustScore:      score,
		Flags:           flags,
		Reasoning:       buildReasoning(score),
		Recommendations: buildRecommendations(score, e.threshold),
		ProcessingTime:  processing.Milliseconds(),
		Timestamp:       e.now().UnixMilli(),
	}

	metrics.RecordVerification(result.IsVerified, flags, processing)

	return result
}

// analyze runs the five analyzers. Content and temporal analysis are pure
// computation; the three lookup-backed analyzers run concurrently and join
// before aggregation. A failed lookup leaves its signal on the conservative
// default.
func (e *Engine) analyze(ctx context.Context, a *alert.EmergencyAlert) verification.Breakdown {
	lookupCtx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	reliability := lookup.NeutralReliability
	knownZone := false
	var crossRef lookup.CrossRefResult

	g, gctx := errgroup.WithContext(lookupCtx)

	g.Go(func() error {
		rel, err := e.reputation.HistoricalReliability(gctx, a.Source.ID)
		if err != nil {
			e.lookupFailed("reputation", a.ID, err)
			return nil
		}
		reliability = rel
		return nil
	})

	g.Go(func() error {
		zone, err := e.zones.IsKnownDisasterZone(gctx, a.Location.Lat, a.Location.Lng)
		if err != nil {
			e.lookupFailed("disaster_zone", a.ID, err)
			return nil
		}
		knownZone = zone
		return nil
	})

	g.Go(func() error {
		res, err := e.feeds.CrossReference(gctx, a)
		if err != nil {
			e.lookupFailed("official_feed", a.ID, err)
			return nil
		}
		crossRef = res
		return nil
	})

	_ = g.Wait()

	return verification.Breakdown{
		Content:        analyzeContent(a.Content),
		Source:         analyzeSource(a.Source.Name, reliability),
		Location:       analyzeLocation(a.Location, knownZone),
		Temporal:       analyzeTemporal(a.Timestamp, e.now()),
		CrossReference: analyzeCrossRef(crossRef),
	}
}

// VerifyBatch scores alerts independently and returns results in input
// order. Verifications run concurrently under the configured limit; one
// alert's failure never affects its siblings.
func (e *Engine) VerifyBatch(ctx context.Context, alerts []*alert.EmergencyAlert) []*verification.Result {
	results := make([]*verification.Result, len(alerts))
	if len(alerts) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.batchLimit)

	for i, a := range alerts {
		i, a := i, a
		g.Go(func() error {
			results[i] = e.Verify(gctx, a)
			return nil
		})
	}

	_ = g.Wait()

	return results
}

// errorResult is the terminal result produced when verification itself
// fails. Callers always receive a well-formed result.
func (e *Engine) errorResult(alertID string) *verification.Result {
	return &verification.Result{
		ID:         "error_" + uuid.New().String(),
		AlertID:    alertID,
		IsVerified: false,
		TrustScore: verification.TrustScore{},
		Flags:      []string{verification.FlagVerificationError},
		Reasoning:  "Unable to verify alert due to technical issues",
		Recommendations: []string{
			"Manually verify with official sources",
		},
		ProcessingTime: 0,
		Timestamp:      e.now().UnixMilli(),
	}
}

func (e *Engine) lookupFailed(name, alertID string, err error) {
	metrics.RecordLookupFailure(name)
	e.logger.WithFields(map[string]interface{}{
		"lookup":   name,
		"alert_id": alertID,
	}).WithError(err).Warn("Lookup failed, using conservative default")
}
