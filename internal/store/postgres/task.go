package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ndungutse/project-tracker/internal/domain"
)

type TaskRepo struct {
	db DB
}

func NewTaskRepo(db DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, completed, due_date, project_id, developer_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		t.Title, t.Description, t.Completed, t.DueDate, t.ProjectID, t.DeveloperID,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("taskRepo.Create: %w", err)
	}

	return nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task

	err := r.db.QueryRow(ctx,
		`SELECT id, title, description, completed, due_date, project_id, developer_id
		 FROM tasks WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.DueDate, &t.ProjectID, &t.DeveloperID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("taskRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("taskRepo.GetByID: %w", err)
	}

	return &t, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, completed, due_date, project_id, developer_id
		 FROM tasks ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.List: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows, "taskRepo.List")
}

func (r *TaskRepo) ListByDeveloper(ctx context.Context, developerID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, completed, due_date, project_id, developer_id
		 FROM tasks WHERE developer_id = $1 ORDER BY id`,
		developerID,
	)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.ListByDeveloper: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows, "taskRepo.ListByDeveloper")
}

func (r *TaskRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, completed, due_date, project_id, developer_id
		 FROM tasks WHERE project_id = $1 ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.ListByProject: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows, "taskRepo.ListByProject")
}

func (r *TaskRepo) ListByStatus(ctx context.Context, completed bool) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, completed, due_date, project_id, developer_id
		 FROM tasks WHERE completed = $1 ORDER BY id`,
		completed,
	)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.ListByStatus: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows, "taskRepo.ListByStatus")
}

func (r *TaskRepo) ListIDsByDeveloper(ctx context.Context, developerID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM tasks WHERE developer_id = $1 ORDER BY id`,
		developerID,
	)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.ListIDsByDeveloper: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("taskRepo.ListIDsByDeveloper: scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("taskRepo.ListIDsByDeveloper: rows: %w", err)
	}

	return ids, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *domain.Task) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET title = $1, description = $2, completed = $3, due_date = $4, project_id = $5
		 WHERE id = $6`,
		t.Title, t.Description, t.Completed, t.DueDate, t.ProjectID, t.ID,
	)
	if err != nil {
		return fmt.Errorf("taskRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("taskRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

// SetDeveloper writes the assignment foreign key. It is the single writer
// of tasks.developer_id, so reassignment implicitly detaches the task from
// any previous developer in the same statement.
func (r *TaskRepo) SetDeveloper(ctx context.Context, id int64, developerID *int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET developer_id = $1 WHERE id = $2`,
		developerID, id,
	)
	if err != nil {
		return fmt.Errorf("taskRepo.SetDeveloper: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("taskRepo.SetDeveloper: %w", domain.ErrNotFound)
	}

	return nil
}

// ClearDeveloper dissociates every task assigned to the given developer
// without deleting the task rows.
func (r *TaskRepo) ClearDeveloper(ctx context.Context, developerID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE tasks SET developer_id = NULL WHERE developer_id = $1`,
		developerID,
	)
	if err != nil {
		return fmt.Errorf("taskRepo.ClearDeveloper: %w", err)
	}

	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("taskRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("taskRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}

// DeleteByProject removes all tasks owned by a project and reports how
// many rows were deleted. Used by the explicit project cascade.
func (r *TaskRepo) DeleteByProject(ctx context.Context, projectID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE project_id = $1`,
		projectID,
	)
	if err != nil {
		return 0, fmt.Errorf("taskRepo.DeleteByProject: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *TaskRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("taskRepo.Exists: %w", err)
	}

	return exists, nil
}

func scanTasks(rows pgx.Rows, caller string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Completed, &t.DueDate,
			&t.ProjectID, &t.DeveloperID,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", caller, err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", caller, err)
	}

	return tasks, nil
}
