package report

import "context"

// Service defines the interface for misinformation report handling
type Service interface {
	// Submit files a new report and returns whether the alert has crossed
	// the manual-review threshold
	Submit(ctx context.Context, r *Report) (needsReview bool, err error)

	// List retrieves reports with pagination
	List(ctx context.Context, limit, offset int) ([]*Report, int64, error)
}
