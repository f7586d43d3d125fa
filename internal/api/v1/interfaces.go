package v1

import (
	"context"
	"time"

	"github.com/ndungutse/project-tracker/internal/auth"
	"github.com/ndungutse/project-tracker/internal/domain"
	"github.com/ndungutse/project-tracker/internal/service"
)

// Service seams for handler testing. The concrete implementations in
// internal/service and internal/auth satisfy these.

// DeveloperService abstracts developer operations, including the
// task-assignment pair. *service.DeveloperService satisfies this interface.
type DeveloperService interface {
	Create(ctx context.Context, username, name, email, skills string) (*service.DeveloperDTO, error)
	GetAll(ctx context.Context) ([]*service.DeveloperDTO, error)
	GetByID(ctx context.Context, id int64) (*service.DeveloperDTO, error)
	Update(ctx context.Context, username string, id int64, patch service.DeveloperPatch) (*service.DeveloperDTO, error)
	Delete(ctx context.Context, username string, id int64) error
	AssignTask(ctx context.Context, username string, developerID, taskID int64) (*service.DeveloperDTO, error)
	RemoveTask(ctx context.Context, username string, developerID, taskID int64) (*service.DeveloperDTO, error)
}

// TaskService abstracts task CRUD and filtered queries.
// *service.TaskService satisfies this interface.
type TaskService interface {
	Create(ctx context.Context, username, title, description string, dueDate time.Time, projectID *int64) (*service.TaskDTO, error)
	GetAll(ctx context.Context) ([]*service.TaskDTO, error)
	GetByID(ctx context.Context, id int64) (*service.TaskDTO, error)
	GetByDeveloper(ctx context.Context, developerID int64) ([]*service.TaskDTO, error)
	GetByProject(ctx context.Context, projectID int64) ([]*service.TaskDTO, error)
	GetByStatus(ctx context.Context, completed bool) ([]*service.TaskDTO, error)
	Update(ctx context.Context, username string, id int64, patch service.TaskPatch) (*service.TaskDTO, error)
	Delete(ctx context.Context, username string, id int64) error
}

// ProjectService abstracts project operations. *service.ProjectService
// satisfies this interface.
type ProjectService interface {
	Create(ctx context.Context, username, name, description string, deadline time.Time) (*service.ProjectDTO, error)
	GetAll(ctx context.Context) ([]*service.ProjectDTO, error)
	GetByID(ctx context.Context, id int64) (*service.ProjectDTO, error)
	Update(ctx context.Context, username string, id int64, patch service.ProjectPatch) (*service.ProjectDTO, error)
	Delete(ctx context.Context, username string, id int64) error
}

// RoleService abstracts role operations. *service.RoleService satisfies
// this interface.
type RoleService interface {
	Create(ctx context.Context, username, roleName string) (*service.RoleDTO, error)
	GetAll(ctx context.Context) ([]*service.RoleDTO, error)
	GetByName(ctx context.Context, roleName string) (*service.RoleDTO, error)
	Delete(ctx context.Context, username string, id int64) error
}

// AuditService abstracts audit trail queries. *service.AuditService
// satisfies this interface.
type AuditService interface {
	Logs(ctx context.Context, entityType, username string) ([]*service.AuditLogDTO, error)
}

// AuthService abstracts authentication operations for handler testing.
// *auth.Service satisfies this interface.
type AuthService interface {
	Register(ctx context.Context, username, email, password, roleName string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*auth.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
}
