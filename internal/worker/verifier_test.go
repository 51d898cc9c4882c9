package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/suraksha-net/suraksha/internal/config"
	"github.com/suraksha-net/suraksha/internal/engine"
	"github.com/suraksha-net/suraksha/internal/lookup"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/services"
	"github.com/suraksha-net/suraksha/internal/testutil"
)

func newTestSweeper(t *testing.T, alertRepo *testutil.MockAlertRepository, verRepo *testutil.MockVerificationRepository) *VerifierSweeper {
	t.Helper()

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	eng := engine.New(
		&testutil.StubReputationLookup{Reliability: 0.9},
		&testutil.StubZoneLookup{KnownZone: true},
		&testutil.StubFeedLookup{Result: lookup.CrossRefResult{Found: true}},
		engine.Config{},
		log,
	)
	svc := services.NewVerificationService(eng, alertRepo, verRepo, log)

	return NewVerifierSweeper(alertRepo, svc, config.WorkerConfig{
		Enabled:   true,
		Schedule:  "@every 1h",
		BatchSize: 10,
	}, log)
}

func TestSweepVerifiesUnverifiedAlerts(t *testing.T) {
	alertRepo := testutil.NewMockAlertRepository()
	verRepo := testutil.NewMockVerificationRepository()

	for _, id := range []string{"alert_1", "alert_2", "alert_3"} {
		alertRepo.Alerts[id] = testutil.NewTestAlert(id)
	}
	alertRepo.Verified["alert_2"] = true

	s := newTestSweeper(t, alertRepo, verRepo)
	s.sweep(context.Background())

	for _, id := range []string{"alert_1", "alert_3"} {
		if _, ok := verRepo.Results[id]; !ok {
			t.Errorf("sweep() did not verify %s", id)
		}
	}
	if _, ok := verRepo.Results["alert_2"]; ok {
		t.Error("sweep() verified an alert that was already verified")
	}
}

func TestSweepListFailure(t *testing.T) {
	alertRepo := testutil.NewMockAlertRepository()
	alertRepo.Alerts["alert_1"] = testutil.NewTestAlert("alert_1")
	alertRepo.ListError = errors.New("db down")
	verRepo := testutil.NewMockVerificationRepository()

	s := newTestSweeper(t, alertRepo, verRepo)
	s.sweep(context.Background())

	if len(verRepo.Results) != 0 {
		t.Error("sweep() verified alerts despite list failure")
	}
}

func TestSweepCancelledContext(t *testing.T) {
	alertRepo := testutil.NewMockAlertRepository()
	alertRepo.Alerts["alert_1"] = testutil.NewTestAlert("alert_1")
	verRepo := testutil.NewMockVerificationRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestSweeper(t, alertRepo, verRepo)
	s.sweep(ctx)

	if len(verRepo.Results) != 0 {
		t.Error("sweep() verified alerts despite cancelled context")
	}
}

func TestSweeperStartStop(t *testing.T) {
	alertRepo := testutil.NewMockAlertRepository()
	verRepo := testutil.NewMockVerificationRepository()
	alertRepo.Alerts["alert_1"] = testutil.NewTestAlert("alert_1")

	s := newTestSweeper(t, alertRepo, verRepo)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Stop()

	if _, ok := verRepo.Results["alert_1"]; !ok {
		t.Error("Start() did not run the initial sweep")
	}
}
