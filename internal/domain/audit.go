package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// Entity type names recorded in the audit trail.
const (
	EntityTypeDeveloper = "Developer"
	EntityTypeTask      = "Task"
	EntityTypeProject   = "Project"
	EntityTypeRole      = "Role"
)

// AuditEntry is an immutable record of a mutating operation. Entries are
// append-only and outlive the entities they describe.
type AuditEntry struct {
	ID           uuid.UUID
	Action       AuditAction
	EntityType   string
	EntityID     int64
	Username     string
	Timestamp    time.Time
	DataSnapshot string
}

// NewAuditEntry creates an entry for the given mutation, stamped now.
func NewAuditEntry(action AuditAction, entityType string, entityID int64, username, snapshot string) *AuditEntry {
	return &AuditEntry{
		ID:           uuid.New(),
		Action:       action,
		EntityType:   entityType,
		EntityID:     entityID,
		Username:     username,
		Timestamp:    time.Now(),
		DataSnapshot: snapshot,
	}
}

// AuditRepository is append-only: entries are never updated or deleted.
// All listing methods return entries ordered by timestamp descending.
type AuditRepository interface {
	Record(ctx context.Context, entry *AuditEntry) error
	FindAll(ctx context.Context) ([]*AuditEntry, error)
	FindByEntityType(ctx context.Context, entityType string) ([]*AuditEntry, error)
	FindByUsername(ctx context.Context, username string) ([]*AuditEntry, error)
	FindByEntityTypeAndUsername(ctx context.Context, entityType, username string) ([]*AuditEntry, error)
}
