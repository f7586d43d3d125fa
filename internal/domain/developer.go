package domain

import (
	"context"
	"errors"
)

type Developer struct {
	ID     int64
	Name   string
	Email  string
	Skills string
}

// NewDeveloper creates a Developer with validated required fields.
// The ID is assigned by the store on insert.
func NewDeveloper(name, email, skills string) (*Developer, error) {
	if name == "" {
		return nil, errors.New("developer: name is required")
	}
	if email == "" {
		return nil, errors.New("developer: email is required")
	}
	return &Developer{
		Name:   name,
		Email:  email,
		Skills: skills,
	}, nil
}

type DeveloperRepository interface {
	Create(ctx context.Context, d *Developer) error
	GetByID(ctx context.Context, id int64) (*Developer, error)
	List(ctx context.Context) ([]*Developer, error)
	Update(ctx context.Context, d *Developer) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
