package sqlite

import (
	"context"
	"fmt"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
	"github.com/ericfisherdev/approvebot/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.OutcomeStore = (*ApprovalRepo)(nil)

// ApprovalRepo is the SQLite implementation of the OutcomeStore port.
type ApprovalRepo struct {
	db *DB
}

// NewApprovalRepo creates a new ApprovalRepo backed by the given DB.
func NewApprovalRepo(db *DB) *ApprovalRepo {
	return &ApprovalRepo{db: db}
}

// Insert appends one approval record to the audit log.
func (r *ApprovalRepo) Insert(ctx context.Context, rec model.ApprovalRecord) error {
	const query = `
		INSERT INTO approvals (
			repo_full_name, pr_number, commenter, acting_identity, message,
			success, failure_reason, quick_triggered, delay_seconds, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	success := 0
	if rec.Success {
		success = 1
	}
	quick := 0
	if rec.QuickTriggered {
		quick = 1
	}

	_, err := r.db.conn.ExecContext(ctx, query,
		rec.RepoFullName, rec.PRNumber, rec.Commenter, rec.ActingIdentity,
		rec.Message, success, rec.FailureReason, quick, rec.DelaySeconds,
		rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert approval record for %s#%d: %w", rec.RepoFullName, rec.PRNumber, err)
	}

	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *ApprovalRepo) ListRecent(ctx context.Context, limit int) ([]model.ApprovalRecord, error) {
	const query = `
		SELECT id, repo_full_name, pr_number, commenter, acting_identity, message,
		       success, failure_reason, quick_triggered, delay_seconds, created_at
		FROM approvals
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list approval records: %w", err)
	}
	defer rows.Close()

	records := make([]model.ApprovalRecord, 0)
	for rows.Next() {
		var rec model.ApprovalRecord
		var success, quick int
		if err := rows.Scan(
			&rec.ID, &rec.RepoFullName, &rec.PRNumber, &rec.Commenter,
			&rec.ActingIdentity, &rec.Message, &success, &rec.FailureReason,
			&quick, &rec.DelaySeconds, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan approval record: %w", err)
		}
		rec.Success = success == 1
		rec.QuickTriggered = quick == 1
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate approval records: %w", err)
	}

	return records, nil
}
