package alert

import "context"

// Repository defines the interface for alert storage (the Alert Store)
type Repository interface {
	// Create stores a new alert
	Create(ctx context.Context, a *EmergencyAlert) error

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id string) (*EmergencyAlert, error)

	// Delete removes an alert
	Delete(ctx context.Context, id string) error

	// List retrieves alerts with filters and pagination
	List(ctx context.Context, filter Filter, limit, offset int) ([]*EmergencyAlert, int64, error)

	// ListUnverified retrieves alerts that have no stored verification result
	ListUnverified(ctx context.Context, limit int) ([]*EmergencyAlert, error)
}
