package services

import (
	"context"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/engine"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
)

// statsWindow is how many recent results feed the stats summary.
const statsWindow = 500

// VerificationService implements verification.Service
type VerificationService struct {
	engine    *engine.Engine
	alertRepo alert.Repository
	repo      verification.Repository
	logger    *logger.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(eng *engine.Engine, alertRepo alert.Repository, repo verification.Repository, log *logger.Logger) verification.Service {
	return &VerificationService{
		engine:    eng,
		alertRepo: alertRepo,
		repo:      repo,
		logger:    log,
	}
}

// VerifyAlert verifies a stored alert and caches the result
func (s *VerificationService) VerifyAlert(ctx context.Context, alertID string) (*verification.Result, error) {
	a, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return nil, err
	}

	result := s.engine.Verify(ctx, a)

	if err := s.repo.Save(ctx, result); err != nil {
		// The result is still valid; only the cache write failed.
		s.logger.ErrorWithErr(err, "Failed to cache verification result")
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id":    alertID,
		"is_verified": result.IsVerified,
		"trust_score": result.TrustScore.Overall,
		"flags":       result.Flags,
	}).Info("Alert verified")

	return result, nil
}

// Verify scores an ad-hoc alert without touching the store
func (s *VerificationService) Verify(ctx context.Context, a *alert.EmergencyAlert) *verification.Result {
	return s.engine.Verify(ctx, a)
}

// VerifyBatch scores alerts independently, results in input order
func (s *VerificationService) VerifyBatch(ctx context.Context, alerts []*alert.EmergencyAlert) []*verification.Result {
	results := s.engine.VerifyBatch(ctx, alerts)

	s.logger.WithFields(map[string]interface{}{
		"count": len(alerts),
	}).Info("Batch verification completed")

	return results
}

// GetResult retrieves the cached result for an alert
func (s *VerificationService) GetResult(ctx context.Context, alertID string) (*verification.Result, error) {
	return s.repo.GetByAlertID(ctx, alertID)
}

// Stats summarizes the most recent verification results
func (s *VerificationService) Stats(ctx context.Context, limit int) (*verification.Stats, error) {
	if limit < 1 || limit > statsWindow {
		limit = statsWindow
	}

	results, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return engine.ComputeStats(results), nil
}
