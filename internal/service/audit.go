package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/ndungutse/project-tracker/internal/domain"
)

// Publisher fans out committed audit entries to interested subscribers
// (the Redis-backed live log stream). Publishing is best effort.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// AuditChannel is the pub/sub channel new audit entries are announced on.
const AuditChannel = "audit:log"

// AuditService records audit entries alongside mutations and serves the
// audit query surface. Write failures are logged and never fail the
// triggering mutation: losing one trail entry is preferable to rejecting
// the user's operation.
type AuditService struct {
	store     domain.Store
	publisher Publisher // nil disables announcements
}

func NewAuditService(store domain.Store, publisher Publisher) *AuditService {
	return &AuditService{store: store, publisher: publisher}
}

// Record appends an audit entry using the given (usually transaction
// scoped) store. Returns the entry, or nil when the write failed.
func (s *AuditService) Record(ctx context.Context, tx domain.Store, action domain.AuditAction, entityType string, entityID int64, username, snapshot string) *domain.AuditEntry {
	entry := domain.NewAuditEntry(action, entityType, entityID, username, snapshot)

	if err := tx.Audit().Record(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("action", string(action)).
			Str("entity_type", entityType).
			Int64("entity_id", entityID).
			Msg("audit: write failed, continuing")
		return nil
	}

	return entry
}

// Announce publishes a committed entry to the audit channel. Call after
// the surrounding transaction committed; a nil entry is a no-op.
func (s *AuditService) Announce(ctx context.Context, entry *domain.AuditEntry) {
	if s.publisher == nil || entry == nil {
		return
	}

	payload, err := json.Marshal(auditToDTO(entry))
	if err != nil {
		log.Warn().Err(err).Msg("audit: marshal announcement")
		return
	}

	if err := s.publisher.Publish(ctx, AuditChannel, payload); err != nil {
		log.Warn().Err(err).Msg("audit: publish announcement")
	}
}

// Logs serves GET /logs: both filters optional, combined when both set.
// Entries come back most recent first.
func (s *AuditService) Logs(ctx context.Context, entityType, username string) ([]*AuditLogDTO, error) {
	var (
		entries []*domain.AuditEntry
		err     error
	)

	switch {
	case entityType != "" && username != "":
		entries, err = s.store.Audit().FindByEntityTypeAndUsername(ctx, entityType, username)
	case entityType != "":
		entries, err = s.store.Audit().FindByEntityType(ctx, entityType)
	case username != "":
		entries, err = s.store.Audit().FindByUsername(ctx, username)
	default:
		entries, err = s.store.Audit().FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]*AuditLogDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, auditToDTO(e))
	}

	return dtos, nil
}
