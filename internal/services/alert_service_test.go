package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/testutil"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func TestAlertServiceCreate(t *testing.T) {
	tests := []struct {
		name    string
		alert   *alert.EmergencyAlert
		repoErr error
		wantErr bool
	}{
		{
			name:  "assigns id and default source kind",
			alert: &alert.EmergencyAlert{Content: "flood reported", Category: alert.CategoryFlood},
		},
		{
			name: "keeps provided id",
			alert: &alert.EmergencyAlert{
				ID:      "alert_existing",
				Content: "fire reported",
				Source:  alert.Source{Kind: alert.SourceOfficial},
			},
		},
		{
			name:    "repository failure",
			alert:   &alert.EmergencyAlert{Content: "flood reported"},
			repoErr: errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockAlertRepository()
			repo.CreateError = tt.repoErr
			svc := NewAlertService(repo, testLogger())

			providedID := tt.alert.ID
			providedKind := tt.alert.Source.Kind

			id, err := svc.Create(context.Background(), tt.alert)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			if providedID != "" && id != providedID {
				t.Errorf("Create() id = %v, want provided %v", id, providedID)
			}
			if providedID == "" && !strings.HasPrefix(id, "alert_") {
				t.Errorf("Create() id = %v, want alert_ prefix", id)
			}
			if providedKind == "" && tt.alert.Source.Kind != alert.SourceUnknown {
				t.Errorf("Create() source kind = %v, want %v", tt.alert.Source.Kind, alert.SourceUnknown)
			}
			if _, ok := repo.Alerts[id]; !ok {
				t.Errorf("Create() alert %v not stored", id)
			}
		})
	}
}

func TestAlertServiceList(t *testing.T) {
	repo := testutil.NewMockAlertRepository()
	svc := NewAlertService(repo, testLogger())

	flood := testutil.NewTestAlert("alert_1")
	flood.Category = alert.CategoryFlood
	fire := testutil.NewTestAlert("alert_2")
	fire.Category = alert.CategoryFire
	repo.Alerts[flood.ID] = flood
	repo.Alerts[fire.ID] = fire

	alerts, total, err := svc.List(context.Background(), alert.Filter{Category: alert.CategoryFlood}, 10, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(alerts) != 1 {
		t.Fatalf("List() returned %d alerts (total %d), want 1", len(alerts), total)
	}
	if alerts[0].ID != flood.ID {
		t.Errorf("List() alert = %v, want %v", alerts[0].ID, flood.ID)
	}
}

func TestAlertServiceDelete(t *testing.T) {
	repo := testutil.NewMockAlertRepository()
	svc := NewAlertService(repo, testLogger())

	a := testutil.NewTestAlert("alert_1")
	repo.Alerts[a.ID] = a

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := repo.Alerts[a.ID]; ok {
		t.Error("Delete() left the alert in the repository")
	}

	if err := svc.Delete(context.Background(), "alert_missing"); err == nil {
		t.Error("Delete() on missing alert expected error, got nil")
	}
}
