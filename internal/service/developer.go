package service

import (
	"context"
	"fmt"

	"github.com/ndungutse/project-tracker/internal/domain"
)

// DeveloperService is the façade over developer CRUD and the
// developer-task assignment operations. Assignment goes through here
// only: the service is the single writer of the task's developer
// foreign key, which keeps the two directions of the association (the
// task's back-reference and the developer's derived task list) agreeing
// by construction.
type DeveloperService struct {
	store domain.Store
	audit *AuditService
}

func NewDeveloperService(store domain.Store, audit *AuditService) *DeveloperService {
	return &DeveloperService{store: store, audit: audit}
}

// DeveloperPatch carries partial-update fields. Empty strings leave the
// current value untouched.
type DeveloperPatch struct {
	Name   string
	Email  string
	Skills string
}

func (s *DeveloperService) Create(ctx context.Context, username, name, email, skills string) (*DeveloperDTO, error) {
	d, err := domain.NewDeveloper(name, email, skills)
	if err != nil {
		return nil, err
	}

	var entry *domain.AuditEntry
	err = s.store.WithTx(ctx, func(tx domain.Store) error {
		if err := tx.Developers().Create(ctx, d); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionCreate, domain.EntityTypeDeveloper, d.ID, username,
			fmt.Sprintf("Created developer with ID %d", d.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return &DeveloperDTO{
		ID:      d.ID,
		Name:    d.Name,
		Email:   d.Email,
		Skills:  d.Skills,
		TaskIDs: []int64{},
	}, nil
}

func (s *DeveloperService) GetAll(ctx context.Context) ([]*DeveloperDTO, error) {
	developers, err := s.store.Developers().List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]*DeveloperDTO, 0, len(developers))
	for _, d := range developers {
		dto, err := s.toDTO(ctx, s.store, d)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}

	return dtos, nil
}

func (s *DeveloperService) GetByID(ctx context.Context, id int64) (*DeveloperDTO, error) {
	d, err := s.store.Developers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toDTO(ctx, s.store, d)
}

func (s *DeveloperService) Update(ctx context.Context, username string, id int64, patch DeveloperPatch) (*DeveloperDTO, error) {
	var (
		updated *domain.Developer
		entry   *domain.AuditEntry
	)

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		d, err := tx.Developers().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Name != "" {
			d.Name = patch.Name
		}
		if patch.Email != "" {
			d.Email = patch.Email
		}
		if patch.Skills != "" {
			d.Skills = patch.Skills
		}

		if err := tx.Developers().Update(ctx, d); err != nil {
			return err
		}

		entry = s.audit.Record(ctx, tx, domain.AuditActionUpdate, domain.EntityTypeDeveloper, d.ID, username,
			fmt.Sprintf("Updated developer with ID %d", d.ID))
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return s.toDTO(ctx, s.store, updated)
}

// Delete removes a developer and dissociates (not deletes) its tasks:
// the task rows survive with their developer reference cleared.
func (s *DeveloperService) Delete(ctx context.Context, username string, id int64) error {
	var entry *domain.AuditEntry

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		if err := tx.Tasks().ClearDeveloper(ctx, id); err != nil {
			return err
		}
		if err := tx.Developers().Delete(ctx, id); err != nil {
			return err
		}
		entry = s.audit.Record(ctx, tx, domain.AuditActionDelete, domain.EntityTypeDeveloper, id, username,
			fmt.Sprintf("Deleted developer with ID %d", id))
		return nil
	})
	if err != nil {
		return err
	}
	s.audit.Announce(ctx, entry)

	return nil
}

func (s *DeveloperService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.store.Developers().Exists(ctx, id)
}

// AssignTask links a task to a developer. Reassigning the same pair is
// idempotent; a task already held by another developer moves over in the
// same statement, so no state with two owners is ever visible.
func (s *DeveloperService) AssignTask(ctx context.Context, username string, developerID, taskID int64) (*DeveloperDTO, error) {
	var (
		dev   *domain.Developer
		entry *domain.AuditEntry
	)

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		d, err := tx.Developers().GetByID(ctx, developerID)
		if err != nil {
			return err
		}

		t, err := tx.Tasks().GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		if !t.AssignedTo(developerID) {
			if err := tx.Tasks().SetDeveloper(ctx, taskID, &developerID); err != nil {
				return err
			}
			entry = s.audit.Record(ctx, tx, domain.AuditActionUpdate, domain.EntityTypeTask, taskID, username,
				fmt.Sprintf("Assigned task %d to developer %d", taskID, developerID))
		}

		dev = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return s.toDTO(ctx, s.store, dev)
}

// RemoveTask unlinks a task from the developer currently holding it.
// Returns ErrNotFound when the developer is absent or the task is not
// assigned to this developer.
func (s *DeveloperService) RemoveTask(ctx context.Context, username string, developerID, taskID int64) (*DeveloperDTO, error) {
	var (
		dev   *domain.Developer
		entry *domain.AuditEntry
	)

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		d, err := tx.Developers().GetByID(ctx, developerID)
		if err != nil {
			return err
		}

		t, err := tx.Tasks().GetByID(ctx, taskID)
		if err != nil {
			return err
		}

		if !t.AssignedTo(developerID) {
			return fmt.Errorf("developerService.RemoveTask: task %d not assigned to developer %d: %w",
				taskID, developerID, domain.ErrNotFound)
		}

		if err := tx.Tasks().SetDeveloper(ctx, taskID, nil); err != nil {
			return err
		}

		entry = s.audit.Record(ctx, tx, domain.AuditActionUpdate, domain.EntityTypeTask, taskID, username,
			fmt.Sprintf("Removed task %d from developer %d", taskID, developerID))
		dev = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.audit.Announce(ctx, entry)

	return s.toDTO(ctx, s.store, dev)
}

// toDTO flattens a developer and its derived task id list.
func (s *DeveloperService) toDTO(ctx context.Context, store domain.Store, d *domain.Developer) (*DeveloperDTO, error) {
	taskIDs, err := store.Tasks().ListIDsByDeveloper(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	return &DeveloperDTO{
		ID:      d.ID,
		Name:    d.Name,
		Email:   d.Email,
		Skills:  d.Skills,
		TaskIDs: taskIDs,
	}, nil
}
