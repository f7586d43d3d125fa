package domain

import "context"

// Store bundles the per-entity repositories behind a single handle.
// WithTx runs fn against a transaction-scoped Store: every repository
// call inside fn shares one database transaction, committed when fn
// returns nil and rolled back otherwise. This is how an entity mutation
// and its audit entry stay atomic.
type Store interface {
	Developers() DeveloperRepository
	Tasks() TaskRepository
	Projects() ProjectRepository
	Roles() RoleRepository
	Users() UserRepository
	Audit() AuditRepository
	WithTx(ctx context.Context, fn func(Store) error) error
}
