package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
)

// AlertService implements alert.Service
type AlertService struct {
	repo   alert.Repository
	logger *logger.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(repo alert.Repository, log *logger.Logger) alert.Service {
	return &AlertService{
		repo:   repo,
		logger: log,
	}
}

// Create stores a new alert
func (s *AlertService) Create(ctx context.Context, a *alert.EmergencyAlert) (string, error) {
	if a.ID == "" {
		a.ID = "alert_" + uuid.New().String()
	}
	if a.Source.Kind == "" {
		a.Source.Kind = alert.SourceUnknown
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create alert")
		return "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id": a.ID,
		"category": a.Category,
		"severity": a.Severity,
		"source":   a.Source.ID,
	}).Info("Alert created")

	return a.ID, nil
}

// GetByID retrieves an alert by ID
func (s *AlertService) GetByID(ctx context.Context, id string) (*alert.EmergencyAlert, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes an alert
func (s *AlertService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete alert")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id": id,
	}).Info("Alert deleted")

	return nil
}

// List retrieves alerts with filters and pagination
func (s *AlertService) List(ctx context.Context, filter alert.Filter, limit, offset int) ([]*alert.EmergencyAlert, int64, error) {
	return s.repo.List(ctx, filter, limit, offset)
}
