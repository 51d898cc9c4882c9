package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/pkg/errors"
)

type VerificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) verification.Repository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Save(ctx context.Context, v *verification.Result) error {
	trustScore, err := json.Marshal(v.TrustScore)
	if err != nil {
		return errors.DatabaseError("Failed to encode trust score", err)
	}
	flags, err := json.Marshal(v.Flags)
	if err != nil {
		return errors.DatabaseError("Failed to encode flags", err)
	}
	recommendations, err := json.Marshal(v.Recommendations)
	if err != nil {
		return errors.DatabaseError("Failed to encode recommendations", err)
	}

	query := `
		INSERT INTO verifications (id, alert_id, is_verified, trust_score, flags,
			reasoning, recommendations, processing_time, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		v.ID, v.AlertID, boolToInt(v.IsVerified), string(trustScore), string(flags),
		v.Reasoning, string(recommendations), v.ProcessingTime, v.Timestamp,
	)
	if err != nil {
		return errors.DatabaseError("Failed to save verification result", err)
	}

	return nil
}

func (r *VerificationRepository) GetByAlertID(ctx context.Context, alertID string) (*verification.Result, error) {
	query := `
		SELECT id, alert_id, is_verified, trust_score, flags, reasoning,
			recommendations, processing_time, timestamp
		FROM verifications WHERE alert_id = ?
		ORDER BY timestamp DESC LIMIT 1
	`

	v, err := scanResult(r.db.QueryRowContext(ctx, query, alertID))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Verification result")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get verification result", err)
	}

	return v, nil
}

func (r *VerificationRepository) ListRecent(ctx context.Context, limit int) ([]*verification.Result, error) {
	query := `
		SELECT id, alert_id, is_verified, trust_score, flags, reasoning,
			recommendations, processing_time, timestamp
		FROM verifications ORDER BY timestamp DESC LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list verification results", err)
	}
	defer rows.Close()

	results := make([]*verification.Result, 0, limit)
	for rows.Next() {
		v, err := scanResult(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan verification result", err)
		}
		results = append(results, v)
	}

	return results, rows.Err()
}

func scanResult(row rowScanner) (*verification.Result, error) {
	var v verification.Result
	var isVerified int
	var trustScore, flags, recommendations string

	err := row.Scan(
		&v.ID, &v.AlertID, &isVerified, &trustScore, &flags,
		&v.Reasoning, &recommendations, &v.ProcessingTime, &v.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	v.IsVerified = isVerified != 0
	if err := json.Unmarshal([]byte(trustScore), &v.TrustScore); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(flags), &v.Flags); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(recommendations), &v.Recommendations); err != nil {
		return nil, err
	}

	return &v, nil
}
