package worker

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/suraksha-net/suraksha/internal/config"
	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
)

// VerifierSweeper periodically verifies alerts that arrived without a
// verification pass, for example over the peer transport while the node
// was offline.
type VerifierSweeper struct {
	alertRepo alert.Repository
	service   verification.Service
	cfg       config.WorkerConfig
	cron      *cron.Cron
	logger    *logger.Logger
}

// NewVerifierSweeper creates a new verification sweeper worker
func NewVerifierSweeper(alertRepo alert.Repository, service verification.Service, cfg config.WorkerConfig, log *logger.Logger) *VerifierSweeper {
	return &VerifierSweeper{
		alertRepo: alertRepo,
		service:   service,
		cfg:       cfg,
		cron:      cron.New(),
		logger:    log,
	}
}

// Start schedules the sweeper and runs an initial sweep
func (s *VerifierSweeper) Start(ctx context.Context) error {
	s.logger.WithFields(map[string]interface{}{
		"schedule":   s.cfg.Schedule,
		"batch_size": s.cfg.BatchSize,
	}).Info("Starting verification sweeper")

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.sweep(ctx)

	return nil
}

// Stop halts the sweeper and waits for a running sweep to finish
func (s *VerifierSweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Verification sweeper stopped")
}

// sweep verifies one batch of unverified alerts
func (s *VerifierSweeper) sweep(ctx context.Context) {
	alerts, err := s.alertRepo.ListUnverified(ctx, s.cfg.BatchSize)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to list unverified alerts")
		return
	}

	if len(alerts) == 0 {
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"count": len(alerts),
	}).Info("Sweeping unverified alerts")

	for _, a := range alerts {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.service.VerifyAlert(ctx, a.ID); err != nil {
			s.logger.WithFields(map[string]interface{}{
				"alert_id": a.ID,
			}).ErrorWithErr(err, "Failed to verify alert during sweep")
		}
	}
}
