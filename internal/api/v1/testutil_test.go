package v1_test

import (
	"context"
	"time"

	"github.com/ndungutse/project-tracker/internal/auth"
	"github.com/ndungutse/project-tracker/internal/domain"
	"github.com/ndungutse/project-tracker/internal/server/middleware"
	"github.com/ndungutse/project-tracker/internal/service"
)

// ---------------------------------------------------------------------------
// Context helpers: inject user identity into context for DoCtx
// ---------------------------------------------------------------------------

func userCtx(username string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, middleware.ContextKeyUserID, int64(1))
	ctx = context.WithValue(ctx, middleware.ContextKeyUsername, username)
	ctx = context.WithValue(ctx, middleware.ContextKeyUserRole, middleware.RoleAdmin)
	return ctx
}

// ---------------------------------------------------------------------------
// Mock DeveloperService
// ---------------------------------------------------------------------------

type mockDeveloperService struct {
	createFunc     func(ctx context.Context, username, name, email, skills string) (*service.DeveloperDTO, error)
	getAllFunc     func(ctx context.Context) ([]*service.DeveloperDTO, error)
	getByIDFunc    func(ctx context.Context, id int64) (*service.DeveloperDTO, error)
	updateFunc     func(ctx context.Context, username string, id int64, patch service.DeveloperPatch) (*service.DeveloperDTO, error)
	deleteFunc     func(ctx context.Context, username string, id int64) error
	assignTaskFunc func(ctx context.Context, username string, developerID, taskID int64) (*service.DeveloperDTO, error)
	removeTaskFunc func(ctx context.Context, username string, developerID, taskID int64) (*service.DeveloperDTO, error)
}

func (m *mockDeveloperService) Create(ctx context.Context, username, name, email, skills string) (*service.DeveloperDTO, error) {
	return m.createFunc(ctx, username, name, email, skills)
}

func (m *mockDeveloperService) GetAll(ctx context.Context) ([]*service.DeveloperDTO, error) {
	return m.getAllFunc(ctx)
}

func (m *mockDeveloperService) GetByID(ctx context.Context, id int64) (*service.DeveloperDTO, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockDeveloperService) Update(ctx context.Context, username string, id int64, patch service.DeveloperPatch) (*service.DeveloperDTO, error) {
	return m.updateFunc(ctx, username, id, patch)
}

func (m *mockDeveloperService) Delete(ctx context.Context, username string, id int64) error {
	return m.deleteFunc(ctx, username, id)
}

func (m *mockDeveloperService) AssignTask(ctx context.Context, username string, developerID, taskID int64) (*service.DeveloperDTO, error) {
	return m.assignTaskFunc(ctx, username, developerID, taskID)
}

func (m *mockDeveloperService) RemoveTask(ctx context.Context, username string, developerID, taskID int64) (*service.DeveloperDTO, error) {
	return m.removeTaskFunc(ctx, username, developerID, taskID)
}

// ---------------------------------------------------------------------------
// Mock TaskService
// ---------------------------------------------------------------------------

type mockTaskService struct {
	createFunc         func(ctx context.Context, username, title, description string, dueDate time.Time, projectID *int64) (*service.TaskDTO, error)
	getAllFunc         func(ctx context.Context) ([]*service.TaskDTO, error)
	getByIDFunc        func(ctx context.Context, id int64) (*service.TaskDTO, error)
	getByDeveloperFunc func(ctx context.Context, developerID int64) ([]*service.TaskDTO, error)
	getByProjectFunc   func(ctx context.Context, projectID int64) ([]*service.TaskDTO, error)
	getByStatusFunc    func(ctx context.Context, completed bool) ([]*service.TaskDTO, error)
	updateFunc         func(ctx context.Context, username string, id int64, patch service.TaskPatch) (*service.TaskDTO, error)
	deleteFunc         func(ctx context.Context, username string, id int64) error
}

func (m *mockTaskService) Create(ctx context.Context, username, title, description string, dueDate time.Time, projectID *int64) (*service.TaskDTO, error) {
	return m.createFunc(ctx, username, title, description, dueDate, projectID)
}

func (m *mockTaskService) GetAll(ctx context.Context) ([]*service.TaskDTO, error) {
	return m.getAllFunc(ctx)
}

func (m *mockTaskService) GetByID(ctx context.Context, id int64) (*service.TaskDTO, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTaskService) GetByDeveloper(ctx context.Context, developerID int64) ([]*service.TaskDTO, error) {
	return m.getByDeveloperFunc(ctx, developerID)
}

func (m *mockTaskService) GetByProject(ctx context.Context, projectID int64) ([]*service.TaskDTO, error) {
	return m.getByProjectFunc(ctx, projectID)
}

func (m *mockTaskService) GetByStatus(ctx context.Context, completed bool) ([]*service.TaskDTO, error) {
	return m.getByStatusFunc(ctx, completed)
}

func (m *mockTaskService) Update(ctx context.Context, username string, id int64, patch service.TaskPatch) (*service.TaskDTO, error) {
	return m.updateFunc(ctx, username, id, patch)
}

func (m *mockTaskService) Delete(ctx context.Context, username string, id int64) error {
	return m.deleteFunc(ctx, username, id)
}

// ---------------------------------------------------------------------------
// Mock ProjectService
// ---------------------------------------------------------------------------

type mockProjectService struct {
	createFunc  func(ctx context.Context, username, name, description string, deadline time.Time) (*service.ProjectDTO, error)
	getAllFunc  func(ctx context.Context) ([]*service.ProjectDTO, error)
	getByIDFunc func(ctx context.Context, id int64) (*service.ProjectDTO, error)
	updateFunc  func(ctx context.Context, username string, id int64, patch service.ProjectPatch) (*service.ProjectDTO, error)
	deleteFunc  func(ctx context.Context, username string, id int64) error
}

func (m *mockProjectService) Create(ctx context.Context, username, name, description string, deadline time.Time) (*service.ProjectDTO, error) {
	return m.createFunc(ctx, username, name, description, deadline)
}

func (m *mockProjectService) GetAll(ctx context.Context) ([]*service.ProjectDTO, error) {
	return m.getAllFunc(ctx)
}

func (m *mockProjectService) GetByID(ctx context.Context, id int64) (*service.ProjectDTO, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockProjectService) Update(ctx context.Context, username string, id int64, patch service.ProjectPatch) (*service.ProjectDTO, error) {
	return m.updateFunc(ctx, username, id, patch)
}

func (m *mockProjectService) Delete(ctx context.Context, username string, id int64) error {
	return m.deleteFunc(ctx, username, id)
}

// ---------------------------------------------------------------------------
// Mock RoleService
// ---------------------------------------------------------------------------

type mockRoleService struct {
	createFunc    func(ctx context.Context, username, roleName string) (*service.RoleDTO, error)
	getAllFunc    func(ctx context.Context) ([]*service.RoleDTO, error)
	getByNameFunc func(ctx context.Context, roleName string) (*service.RoleDTO, error)
	deleteFunc    func(ctx context.Context, username string, id int64) error
}

func (m *mockRoleService) Create(ctx context.Context, username, roleName string) (*service.RoleDTO, error) {
	return m.createFunc(ctx, username, roleName)
}

func (m *mockRoleService) GetAll(ctx context.Context) ([]*service.RoleDTO, error) {
	return m.getAllFunc(ctx)
}

func (m *mockRoleService) GetByName(ctx context.Context, roleName string) (*service.RoleDTO, error) {
	return m.getByNameFunc(ctx, roleName)
}

func (m *mockRoleService) Delete(ctx context.Context, username string, id int64) error {
	return m.deleteFunc(ctx, username, id)
}

// ---------------------------------------------------------------------------
// Mock AuditService
// ---------------------------------------------------------------------------

type mockAuditService struct {
	logsFunc func(ctx context.Context, entityType, username string) ([]*service.AuditLogDTO, error)
}

func (m *mockAuditService) Logs(ctx context.Context, entityType, username string) ([]*service.AuditLogDTO, error) {
	return m.logsFunc(ctx, entityType, username)
}

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	registerFunc func(ctx context.Context, username, email, password, roleName string) (*domain.User, error)
	loginFunc    func(ctx context.Context, username, password string) (*auth.LoginResult, error)
	refreshFunc  func(ctx context.Context, refreshToken string) (string, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password, roleName string) (*domain.User, error) {
	return m.registerFunc(ctx, username, email, password, roleName)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*auth.LoginResult, error) {
	return m.loginFunc(ctx, username, password)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshFunc(ctx, refreshToken)
}
