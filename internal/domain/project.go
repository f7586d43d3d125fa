package domain

import (
	"context"
	"errors"
	"time"
)

type Project struct {
	ID          int64
	Name        string
	Description string
	Deadline    time.Time
	CreatedAt   time.Time
}

// NewProject creates a Project with validated required fields.
func NewProject(name, description string, deadline time.Time) (*Project, error) {
	if name == "" {
		return nil, errors.New("project: name is required")
	}
	return &Project{
		Name:        name,
		Description: description,
		Deadline:    deadline,
		CreatedAt:   time.Now(),
	}, nil
}

type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
