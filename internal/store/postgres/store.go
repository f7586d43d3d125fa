package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndungutse/project-tracker/internal/domain"
)

// DB is the querying surface shared by *pgxpool.Pool and pgx.Tx, so the
// same repository code serves both pooled and transaction-scoped stores.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool       *pgxpool.Pool // nil on transaction-scoped stores
	developers *DeveloperRepo
	tasks      *TaskRepo
	projects   *ProjectRepo
	roles      *RoleRepo
	users      *UserRepo
	audit      *AuditRepo
}

func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	s := newStore(pool)
	s.pool = pool
	return s, nil
}

func newStore(db DB) *Store {
	return &Store{
		developers: NewDeveloperRepo(db),
		tasks:      NewTaskRepo(db),
		projects:   NewProjectRepo(db),
		roles:      NewRoleRepo(db),
		users:      NewUserRepo(db),
		audit:      NewAuditRepo(db),
	}
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// WithTx runs fn against a transaction-scoped Store. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(domain.Store) error) error {
	if s.pool == nil {
		// Already inside a transaction; reuse it.
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres.WithTx: begin: %w", err)
	}

	if err := fn(newStore(tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres.WithTx: commit: %w", err)
	}

	return nil
}

func (s *Store) Developers() domain.DeveloperRepository { return s.developers }
func (s *Store) Tasks() domain.TaskRepository           { return s.tasks }
func (s *Store) Projects() domain.ProjectRepository     { return s.projects }
func (s *Store) Roles() domain.RoleRepository           { return s.roles }
func (s *Store) Users() domain.UserRepository           { return s.users }
func (s *Store) Audit() domain.AuditRepository          { return s.audit }
