package verification

import "context"

// Repository defines the interface for cached verification results
type Repository interface {
	// Save stores a verification result
	Save(ctx context.Context, r *Result) error

	// GetByAlertID retrieves the most recent result for an alert
	GetByAlertID(ctx context.Context, alertID string) (*Result, error)

	// ListRecent retrieves the most recent results, newest first
	ListRecent(ctx context.Context, limit int) ([]*Result, error)
}
