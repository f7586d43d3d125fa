package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndungutse/project-tracker/internal/domain"
)

type AuditRepo struct {
	db DB
}

func NewAuditRepo(db DB) *AuditRepo {
	return &AuditRepo{db: db}
}

// Record appends an entry to the audit trail. The table has no UPDATE or
// DELETE path in this codebase.
func (r *AuditRepo) Record(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO audit_log (id, action, entity_type, entity_id, username, recorded_at, data_snapshot)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Action, entry.EntityType, entry.EntityID,
		entry.Username, entry.Timestamp, entry.DataSnapshot,
	)
	if err != nil {
		return fmt.Errorf("auditRepo.Record: %w", err)
	}

	return nil
}

func (r *AuditRepo) FindAll(ctx context.Context) ([]*domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, action, entity_type, entity_id, username, recorded_at, data_snapshot
		 FROM audit_log
		 ORDER BY recorded_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("auditRepo.FindAll: %w", err)
	}
	defer rows.Close()

	return scanAuditEntries(rows, "auditRepo.FindAll")
}

func (r *AuditRepo) FindByEntityType(ctx context.Context, entityType string) ([]*domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, action, entity_type, entity_id, username, recorded_at, data_snapshot
		 FROM audit_log WHERE entity_type = $1
		 ORDER BY recorded_at DESC`,
		entityType,
	)
	if err != nil {
		return nil, fmt.Errorf("auditRepo.FindByEntityType: %w", err)
	}
	defer rows.Close()

	return scanAuditEntries(rows, "auditRepo.FindByEntityType")
}

func (r *AuditRepo) FindByUsername(ctx context.Context, username string) ([]*domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, action, entity_type, entity_id, username, recorded_at, data_snapshot
		 FROM audit_log WHERE username = $1
		 ORDER BY recorded_at DESC`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("auditRepo.FindByUsername: %w", err)
	}
	defer rows.Close()

	return scanAuditEntries(rows, "auditRepo.FindByUsername")
}

func (r *AuditRepo) FindByEntityTypeAndUsername(ctx context.Context, entityType, username string) ([]*domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, action, entity_type, entity_id, username, recorded_at, data_snapshot
		 FROM audit_log WHERE entity_type = $1 AND username = $2
		 ORDER BY recorded_at DESC`,
		entityType, username,
	)
	if err != nil {
		return nil, fmt.Errorf("auditRepo.FindByEntityTypeAndUsername: %w", err)
	}
	defer rows.Close()

	return scanAuditEntries(rows, "auditRepo.FindByEntityTypeAndUsername")
}

func scanAuditEntries(rows pgx.Rows, caller string) ([]*domain.AuditEntry, error) {
	var entries []*domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(
			&e.ID, &e.Action, &e.EntityType, &e.EntityID,
			&e.Username, &e.Timestamp, &e.DataSnapshot,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", caller, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", caller, err)
	}

	return entries, nil
}
