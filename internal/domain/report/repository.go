package report

import "context"

// Repository defines the interface for the Report Store
type Repository interface {
	// Create stores a new misinformation report
	Create(ctx context.Context, r *Report) error

	// ListByAlert retrieves all reports filed against an alert
	ListByAlert(ctx context.Context, alertID string) ([]*Report, error)

	// List retrieves reports with pagination, newest first
	List(ctx context.Context, limit, offset int) ([]*Report, int64, error)

	// CountByAlert counts reports filed against an alert
	CountByAlert(ctx context.Context, alertID string) (int, error)
}
