package service

import (
	"context"
	"fmt"

	"github.com/ndungutse/project-tracker/internal/domain"
)

type RoleService struct {
	store domain.Store
	audit *AuditService
}

func NewRoleService(store domain.Store, audit *AuditService) *RoleService {
	return &RoleService{store: store, audit: audit}
}

func (s *RoleService) Create(ctx context.Context, username, roleName string) (*RoleDTO, error) {
	role, err := domain.NewRole(roleName)
	if err != nil {
		return nil, err
	}

	var entry *domain.AuditEntry
	err = s.store.WithTx(ctx, func(tx domain.Store) error {
		if err := tx.Roles().Create(ctx, role); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionCreate, domain.EntityTypeRole, role.ID, username,
			fmt.Sprintf("Created role %s", role.RoleName))
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return roleToDTO(role), nil
}

func (s *RoleService) GetAll(ctx context.Context) ([]*RoleDTO, error) {
	roles, err := s.store.Roles().List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*RoleDTO, 0, len(roles))
	for _, r := range roles {
		dtos = append(dtos, roleToDTO(r))
	}

	return dtos, nil
}

func (s *RoleService) GetByName(ctx context.Context, roleName string) (*RoleDTO, error) {
	role, err := s.store.Roles().GetByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	return roleToDTO(role), nil
}

func (s *RoleService) ExistsByName(ctx context.Context, roleName string) (bool, error) {
	return s.store.Roles().ExistsByName(ctx, roleName)
}

func (s *RoleService) Delete(ctx context.Context, username string, id int64) error {
	var entry *domain.AuditEntry

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		if err := tx.Roles().Delete(ctx, id); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionDelete, domain.EntityTypeRole, id, username,
			fmt.Sprintf("Deleted role with ID %d", id))
		return nil
	})
	if err != nil {
		return err
	}
	s.audit.Announce(ctx, entry)

	return nil
}
