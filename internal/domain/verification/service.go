package verification

import (
	"context"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
)

// Service defines the interface for alert verification business logic
type Service interface {
	// VerifyAlert verifies a stored alert and caches the result
	VerifyAlert(ctx context.Context, alertID string) (*Result, error)

	// Verify scores an ad-hoc alert without touching the store
	Verify(ctx context.Context, a *alert.EmergencyAlert) *Result

	// VerifyBatch scores alerts independently, results in input order
	VerifyBatch(ctx context.Context, alerts []*alert.EmergencyAlert) []*Result

	// GetResult retrieves the cached result for an alert
	GetResult(ctx context.Context, alertID string) (*Result, error)

	// Stats summarizes the most recent verification results
	Stats(ctx context.Context, limit int) (*Stats, error)
}
