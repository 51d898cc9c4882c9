package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/suraksha-net/suraksha/internal/domain/report"
	"github.com/suraksha-net/suraksha/internal/testutil"
)

func TestReportRepositoryRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewReportRepository(db)
	ctx := context.Background()

	want := &report.Report{
		ID:          "report_1",
		AlertID:     "alert_1",
		Reason:      report.ReasonFalseInformation,
		Description: "location does not match any official feed",
		ReporterID:  "user-7",
		CreatedAt:   time.Now().Truncate(time.Second),
	}
	if err := repo.Create(ctx, want); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	reports, err := repo.ListByAlert(ctx, "alert_1")
	if err != nil {
		t.Fatalf("ListByAlert() error = %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("ListByAlert() returned %d reports, want 1", len(reports))
	}

	got := reports[0]
	if got.ID != want.ID || got.AlertID != want.AlertID || got.Reason != want.Reason ||
		got.Description != want.Description || got.ReporterID != want.ReporterID {
		t.Errorf("ListByAlert() = %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("ListByAlert() CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestReportRepositoryCountByAlert(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewReportRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		r := &report.Report{
			ID:        fmt.Sprintf("report_%d", i),
			AlertID:   "alert_1",
			Reason:    report.ReasonSpam,
			CreatedAt: time.Now(),
		}
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	count, err := repo.CountByAlert(ctx, "alert_1")
	if err != nil {
		t.Fatalf("CountByAlert() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountByAlert() = %d, want 3", count)
	}

	count, err = repo.CountByAlert(ctx, "alert_other")
	if err != nil {
		t.Fatalf("CountByAlert() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountByAlert() = %d, want 0", count)
	}
}

func TestReportRepositoryList(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewReportRepository(db)
	ctx := context.Background()

	base := time.Now().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		r := &report.Report{
			ID:        fmt.Sprintf("report_%d", i),
			AlertID:   "alert_1",
			Reason:    report.ReasonMisleading,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	reports, total, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 5 {
		t.Errorf("List() total = %d, want 5", total)
	}
	if len(reports) != 2 {
		t.Fatalf("List() returned %d reports, want 2", len(reports))
	}
	if reports[0].ID != "report_4" || reports[1].ID != "report_3" {
		t.Errorf("List() = [%v %v], want newest first", reports[0].ID, reports[1].ID)
	}
}
