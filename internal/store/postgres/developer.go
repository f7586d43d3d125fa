package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndungutse/project-tracker/internal/domain"
)

type DeveloperRepo struct {
	db DB
}

func NewDeveloperRepo(db DB) *DeveloperRepo {
	return &DeveloperRepo{db: db}
}

func (r *DeveloperRepo) Create(ctx context.Context, d *domain.Developer) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO developers (name, email, skills)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		d.Name, d.Email, d.Skills,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("developerRepo.Create: %w", err)
	}

	return nil
}

func (r *DeveloperRepo) GetByID(ctx context.Context, id int64) (*domain.Developer, error) {
	var d domain.Developer

	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, skills FROM developers WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Email, &d.Skills)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("developerRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("developerRepo.GetByID: %w", err)
	}

	return &d, nil
}

func (r *DeveloperRepo) List(ctx context.Context) ([]*domain.Developer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, skills FROM developers ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("developerRepo.List: %w", err)
	}
	defer rows.Close()

	var developers []*domain.Developer
	for rows.Next() {
		var d domain.Developer
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Skills); err != nil {
			return nil, fmt.Errorf("developerRepo.List: scan: %w", err)
		}
		developers = append(developers, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("developerRepo.List: rows: %w", err)
	}

	return developers, nil
}

func (r *DeveloperRepo) Update(ctx context.Context, d *domain.Developer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE developers SET name = $1, email = $2, skills = $3 WHERE id = $4`,
		d.Name, d.Email, d.Skills, d.ID,
	)
	if err != nil {
		return fmt.Errorf("developerRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("developerRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *DeveloperRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM developers WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("developerRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("developerRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *DeveloperRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM developers WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("developerRepo.Exists: %w", err)
	}

	return exists, nil
}
