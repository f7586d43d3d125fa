package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndungutse/project-tracker/internal/domain"
)

type ProjectService struct {
	store domain.Store
	audit *AuditService
}

func NewProjectService(store domain.Store, audit *AuditService) *ProjectService {
	return &ProjectService{store: store, audit: audit}
}

type ProjectPatch struct {
	Name        string
	Description string
	Deadline    *time.Time
}

func (s *ProjectService) Create(ctx context.Context, username, name, description string, deadline time.Time) (*ProjectDTO, error) {
	p, err := domain.NewProject(name, description, deadline)
	if err != nil {
		return nil, err
	}

	var entry *domain.AuditEntry
	err = s.store.WithTx(ctx, func(tx domain.Store) error {
		if err := tx.Projects().Create(ctx, p); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionCreate, domain.EntityTypeProject, p.ID, username,
			fmt.Sprintf("Created project with ID %d", p.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return &ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
		TaskIDs:     []int64{},
	}, nil
}

func (s *ProjectService) GetAll(ctx context.Context) ([]*ProjectDTO, error) {
	projects, err := s.store.Projects().List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*ProjectDTO, 0, len(projects))
	for _, p := range projects {
		dto, err := s.toDTO(ctx, p)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*ProjectDTO, error) {
	p, err := s.store.Projects().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(ctx, p)
}

func (s *ProjectService) Update(ctx context.Context, username string, id int64, patch ProjectPatch) (*ProjectDTO, error) {
	var (
		updated *domain.Project
		entry   *domain.AuditEntry
	)

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		p, err := tx.Projects().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Name != "" {
			p.Name = patch.Name
		}
		if patch.Description != "" {
			p.Description = patch.Description
		}
		if patch.Deadline != nil {
			p.Deadline = *patch.Deadline
		}

		if err := tx.Projects().Update(ctx, p); err != nil {
			return err
		}

		entry = s.audit.Record(ctx, tx, domain.AuditActionUpdate, domain.EntityTypeProject, p.ID, username,
			fmt.Sprintf("Updated project with ID %d", p.ID))
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return s.toDTO(ctx, updated)
}

// Delete cascades: the project's tasks are deleted first, explicitly,
// inside the same transaction, then the project row itself.
func (s *ProjectService) Delete(ctx context.Context, username string, id int64) error {
	var entry *domain.AuditEntry

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		deleted, err := tx.Tasks().DeleteByProject(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Projects().Delete(ctx, id); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionDelete, domain.EntityTypeProject, id, username,
			fmt.Sprintf("Deleted project with ID %d and %d owned tasks", id, deleted))
		return nil
	})
	if err != nil {
		return err
	}
	s.audit.Announce(ctx, entry)

	return nil
}

func (s *ProjectService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.store.Projects().Exists(ctx, id)
}

func (s *ProjectService) toDTO(ctx context.Context, p *domain.Project) (*ProjectDTO, error) {
	tasks, err := s.store.Tasks().ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	taskIDs := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}

	return &ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Deadline:    p.Deadline,
		CreatedAt:   p.CreatedAt,
		TaskIDs:     taskIDs,
	}, nil
}
