package domain

import (
	"context"
	"errors"
	"time"
)

type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	DueDate     time.Time
	ProjectID   *int64 // nullable, owning project
	DeveloperID *int64 // nullable, assigned developer
}

// NewTask creates a Task with validated required fields. Associations start
// empty; the assignment operations are the only writers of DeveloperID.
func NewTask(title, description string, dueDate time.Time) (*Task, error) {
	if title == "" {
		return nil, errors.New("task: title is required")
	}
	return &Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
	}, nil
}

// AssignedTo reports whether the task is currently assigned to the given
// developer.
func (t *Task) AssignedTo(developerID int64) bool {
	return t.DeveloperID != nil && *t.DeveloperID == developerID
}

type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id int64) (*Task, error)
	List(ctx context.Context) ([]*Task, error)
	ListByDeveloper(ctx context.Context, developerID int64) ([]*Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]*Task, error)
	ListByStatus(ctx context.Context, completed bool) ([]*Task, error)
	ListIDsByDeveloper(ctx context.Context, developerID int64) ([]int64, error)
	Update(ctx context.Context, t *Task) error
	SetDeveloper(ctx context.Context, id int64, developerID *int64) error
	ClearDeveloper(ctx context.Context, developerID int64) error
	Delete(ctx context.Context, id int64) error
	DeleteByProject(ctx context.Context, projectID int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
