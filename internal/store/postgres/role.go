package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ndungutse/project-tracker/internal/domain"
)

type RoleRepo struct {
	db DB
}

func NewRoleRepo(db DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) Create(ctx context.Context, role *domain.Role) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO roles (role_name) VALUES ($1) RETURNING id`,
		role.RoleName,
	).Scan(&role.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("roleRepo.Create: %w", domain.ErrConflict)
		}
		return fmt.Errorf("roleRepo.Create: %w", err)
	}

	return nil
}

func (r *RoleRepo) GetByName(ctx context.Context, roleName string) (*domain.Role, error) {
	var role domain.Role

	err := r.db.QueryRow(ctx,
		`SELECT id, role_name FROM roles WHERE role_name = $1`,
		roleName,
	).Scan(&role.ID, &role.RoleName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("roleRepo.GetByName: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("roleRepo.GetByName: %w", err)
	}

	return &role, nil
}

func (r *RoleRepo) List(ctx context.Context) ([]*domain.Role, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, role_name FROM roles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("roleRepo.List: %w", err)
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.RoleName); err != nil {
			return nil, fmt.Errorf("roleRepo.List: scan: %w", err)
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("roleRepo.List: rows: %w", err)
	}

	return roles, nil
}

func (r *RoleRepo) ExistsByName(ctx context.Context, roleName string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM roles WHERE role_name = $1)`,
		roleName,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("roleRepo.ExistsByName: %w", err)
	}

	return exists, nil
}

func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM roles WHERE id = $1`,
		id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("roleRepo.Delete: role %d still referenced: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("roleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("roleRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}
