package domain

import (
	"context"
	"errors"
)

type Role struct {
	ID       int64
	RoleName string // unique, e.g. "ROLE_ADMIN", "ROLE_DEVELOPER"
}

// NewRole creates a Role with a validated unique name. Uniqueness is
// enforced by the store.
func NewRole(roleName string) (*Role, error) {
	if roleName == "" {
		return nil, errors.New("role: role name is required")
	}
	return &Role{RoleName: roleName}, nil
}

type RoleRepository interface {
	Create(ctx context.Context, r *Role) error
	GetByName(ctx context.Context, roleName string) (*Role, error)
	List(ctx context.Context) ([]*Role, error)
	ExistsByName(ctx context.Context, roleName string) (bool, error)
	Delete(ctx context.Context, id int64) error
}
