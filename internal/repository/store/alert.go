package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/pkg/errors"
)

type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) alert.Repository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *alert.EmergencyAlert) error {
	query := `
		INSERT INTO alerts (id, content, source_id, source_name, source_kind, source_verified,
			lat, lng, address, radius, category, severity, timestamp, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Content, a.Source.ID, a.Source.Name, a.Source.Kind, boolToInt(a.Source.Verified),
		a.Location.Lat, a.Location.Lng, a.Location.Address, a.Location.Radius,
		a.Category, a.Severity, a.Timestamp, strings.Join(a.Tags, ","),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create alert", err)
	}

	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id string) (*alert.EmergencyAlert, error) {
	query := `
		SELECT id, content, source_id, source_name, source_kind, source_verified,
			lat, lng, address, radius, category, severity, timestamp, tags
		FROM alerts WHERE id = ?
	`

	a, err := scanAlert(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Alert")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get alert", err)
	}

	return a, nil
}

func (r *AlertRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM alerts WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("Failed to delete alert", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Alert")
	}

	return nil
}

func (r *AlertRepository) List(ctx context.Context, filter alert.Filter, limit, offset int) ([]*alert.EmergencyAlert, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Severity != "" {
		where = append(where, "severity = ?")
		args = append(args, filter.Severity)
	}
	if filter.SourceID != "" {
		where = append(where, "source_id = ?")
		args = append(args, filter.SourceID)
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM alerts WHERE %s", whereClause)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count alerts", err)
	}

	query := fmt.Sprintf(`
		SELECT id, content, source_id, source_name, source_kind, source_verified,
			lat, lng, address, radius, category, severity, timestamp, tags
		FROM alerts WHERE %s ORDER BY timestamp DESC LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, limit, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list alerts", err)
	}
	defer rows.Close()

	alerts := make([]*alert.EmergencyAlert, 0, limit)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan alert", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, total, rows.Err()
}

func (r *AlertRepository) ListUnverified(ctx context.Context, limit int) ([]*alert.EmergencyAlert, error) {
	query := `
		SELECT a.id, a.content, a.source_id, a.source_name, a.source_kind, a.source_verified,
			a.lat, a.lng, a.address, a.radius, a.category, a.severity, a.timestamp, a.tags
		FROM alerts a
		LEFT JOIN verifications v ON v.alert_id = a.id
		WHERE v.id IS NULL
		ORDER BY a.timestamp ASC LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list unverified alerts", err)
	}
	defer rows.Close()

	alerts := make([]*alert.EmergencyAlert, 0, limit)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan alert", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAlert(row rowScanner) (*alert.EmergencyAlert, error) {
	var a alert.EmergencyAlert
	var verified int
	var address, tags sql.NullString
	var radius sql.NullFloat64

	err := row.Scan(
		&a.ID, &a.Content, &a.Source.ID, &a.Source.Name, &a.Source.Kind, &verified,
		&a.Location.Lat, &a.Location.Lng, &address, &radius,
		&a.Category, &a.Severity, &a.Timestamp, &tags,
	)
	if err != nil {
		return nil, err
	}

	a.Source.Verified = verified != 0
	a.Location.Address = address.String
	a.Location.Radius = radius.Float64
	if tags.String != "" {
		a.Tags = strings.Split(tags.String, ",")
	}

	return &a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
