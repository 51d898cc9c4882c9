package alert

import "context"

// Service defines the interface for alert business logic
type Service interface {
	// Create stores a new alert
	Create(ctx context.Context, a *EmergencyAlert) (string, error)

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id string) (*EmergencyAlert, error)

	// Delete removes an alert
	Delete(ctx context.Context, id string) error

	// List retrieves alerts with filters and pagination
	List(ctx context.Context, filter Filter, limit, offset int) ([]*EmergencyAlert, int64, error)
}
