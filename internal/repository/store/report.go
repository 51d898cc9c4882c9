package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/suraksha-net/suraksha/internal/domain/report"
	"github.com/suraksha-net/suraksha/internal/pkg/errors"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) report.Repository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *report.Report) error {
	query := `
		INSERT INTO reports (id, alert_id, reason, description, reporter_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rep.ID, rep.AlertID, rep.Reason, rep.Description, rep.ReporterID,
		rep.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create report", err)
	}

	return nil
}

func (r *ReportRepository) ListByAlert(ctx context.Context, alertID string) ([]*report.Report, error) {
	query := `
		SELECT id, alert_id, reason, description, reporter_id, created_at
		FROM reports WHERE alert_id = ? ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, alertID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list reports", err)
	}
	defer rows.Close()

	return collectReports(rows)
}

func (r *ReportRepository) List(ctx context.Context, limit, offset int) ([]*report.Report, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count reports", err)
	}

	query := `
		SELECT id, alert_id, reason, description, reporter_id, created_at
		FROM reports ORDER BY created_at DESC LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list reports", err)
	}
	defer rows.Close()

	reports, err := collectReports(rows)
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *ReportRepository) CountByAlert(ctx context.Context, alertID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports WHERE alert_id = ?", alertID).Scan(&count)
	if err != nil {
		return 0, errors.DatabaseError("Failed to count reports", err)
	}
	return count, nil
}

func collectReports(rows *sql.Rows) ([]*report.Report, error) {
	reports := make([]*report.Report, 0, 20)
	for rows.Next() {
		var rep report.Report
		var description, reporterID sql.NullString
		var createdAt string

		err := rows.Scan(&rep.ID, &rep.AlertID, &rep.Reason, &description, &reporterID, &createdAt)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan report", err)
		}

		rep.Description = description.String
		rep.ReporterID = reporterID.String
		rep.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		reports = append(reports, &rep)
	}

	return reports, rows.Err()
}
