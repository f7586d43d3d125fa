package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndungutse/project-tracker/internal/domain"
)

type TaskService struct {
	store domain.Store
	audit *AuditService
}

func NewTaskService(store domain.Store, audit *AuditService) *TaskService {
	return &TaskService{store: store, audit: audit}
}

// TaskPatch carries partial-update fields. Nil pointers and empty
// strings leave the current value untouched. The developer association
// is never touched here; assignment has its own operations.
type TaskPatch struct {
	Title       string
	Description string
	Status      *bool
	DueDate     *time.Time
}

func (s *TaskService) Create(ctx context.Context, username, title, description string, dueDate time.Time, projectID *int64) (*TaskDTO, error) {
	t, err := domain.NewTask(title, description, dueDate)
	if err != nil {
		return nil, err
	}
	t.ProjectID = projectID

	var entry *domain.AuditEntry
	err = s.store.WithTx(ctx, func(tx domain.Store) error {
		if projectID != nil {
			if _, err := tx.Projects().GetByID(ctx, *projectID); err != nil {
				return err
			}
		}
		if err := tx.Tasks().Create(ctx, t); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionCreate, domain.EntityTypeTask, t.ID, username,
			fmt.Sprintf("Created task with ID %d", t.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return taskToDTO(t), nil
}

func (s *TaskService) GetAll(ctx context.Context) ([]*TaskDTO, error) {
	tasks, err := s.store.Tasks().List(ctx)
	if err != nil {
		return nil, err
	}
	return tasksToDTOs(tasks), nil
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (*TaskDTO, error) {
	t, err := s.store.Tasks().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return taskToDTO(t), nil
}

func (s *TaskService) GetByDeveloper(ctx context.Context, developerID int64) ([]*TaskDTO, error) {
	tasks, err := s.store.Tasks().ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}
	return tasksToDTOs(tasks), nil
}

func (s *TaskService) GetByProject(ctx context.Context, projectID int64) ([]*TaskDTO, error) {
	tasks, err := s.store.Tasks().ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return tasksToDTOs(tasks), nil
}

func (s *TaskService) GetByStatus(ctx context.Context, completed bool) ([]*TaskDTO, error) {
	tasks, err := s.store.Tasks().ListByStatus(ctx, completed)
	if err != nil {
		return nil, err
	}
	return tasksToDTOs(tasks), nil
}

func (s *TaskService) Update(ctx context.Context, username string, id int64, patch TaskPatch) (*TaskDTO, error) {
	var (
		updated *domain.Task
		entry   *domain.AuditEntry
	)

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		t, err := tx.Tasks().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Title != "" {
			t.Title = patch.Title
		}
		if patch.Description != "" {
			t.Description = patch.Description
		}
		if patch.Status != nil {
			t.Completed = *patch.Status
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}

		if err := tx.Tasks().Update(ctx, t); err != nil {
			return err
		}

		entry = s.audit.Record(ctx, tx, domain.AuditActionUpdate, domain.EntityTypeTask, t.ID, username,
			fmt.Sprintf("Updated task with ID %d", t.ID))
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return taskToDTO(updated), nil
}

func (s *TaskService) Delete(ctx context.Context, username string, id int64) error {
	var entry *domain.AuditEntry

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		if err := tx.Tasks().Delete(ctx, id); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionDelete, domain.EntityTypeTask, id, username,
			fmt.Sprintf("Deleted task with ID %d", id))
		return nil
	})
	if err != nil {
		return err
	}
	s.audit.Announce(ctx, entry)

	return nil
}

func (s *TaskService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.store.Tasks().Exists(ctx, id)
}
