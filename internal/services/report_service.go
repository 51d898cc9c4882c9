package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suraksha-net/suraksha/internal/domain/report"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/pkg/metrics"
)

// ReportService implements report.Service
type ReportService struct {
	repo   report.Repository
	logger *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(repo report.Repository, log *logger.Logger) report.Service {
	return &ReportService{
		repo:   repo,
		logger: log,
	}
}

// Submit files a new misinformation report. It returns true when the alert
// has collected enough reports to need manual review.
func (s *ReportService) Submit(ctx context.Context, r *report.Report) (bool, error) {
	if r.ID == "" {
		r.ID = "report_" + uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create report")
		return false, err
	}

	metrics.RecordReport(r.Reason)

	count, err := s.repo.CountByAlert(ctx, r.AlertID)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to count reports for alert")
		return false, nil
	}

	needsReview := count >= report.ReviewThreshold
	if needsReview {
		s.logger.WithFields(map[string]interface{}{
			"alert_id": r.AlertID,
			"reports":  count,
		}).Warn("Alert crossed report threshold, needs manual review")
	}

	return needsReview, nil
}

// List retrieves reports with pagination
func (s *ReportService) List(ctx context.Context, limit, offset int) ([]*report.Report, int64, error) {
	return s.repo.List(ctx, limit, offset)
}
