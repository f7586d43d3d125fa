package service_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/ndungutse/project-tracker/internal/domain"
)

// ---------------------------------------------------------------------------
// In-memory domain.Store fake. Stateful so that assignment and cascade
// tests can assert the resulting association state, not just call counts.
// WithTx hands the same store back: services only mutate after their
// not-found checks pass, so rollback fidelity is not needed here.
// ---------------------------------------------------------------------------

type memStore struct {
	developers map[int64]*domain.Developer
	tasks      map[int64]*domain.Task
	projects   map[int64]*domain.Project
	roles      map[int64]*domain.Role
	users      map[int64]*domain.User
	audit      []*domain.AuditEntry
	nextID     int64

	auditRecordErr error // inject audit write failures
}

func newMemStore() *memStore {
	return &memStore{
		developers: make(map[int64]*domain.Developer),
		tasks:      make(map[int64]*domain.Task),
		projects:   make(map[int64]*domain.Project),
		roles:      make(map[int64]*domain.Role),
		users:      make(map[int64]*domain.User),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) Developers() domain.DeveloperRepository { return &memDeveloperRepo{s} }
func (s *memStore) Tasks() domain.TaskRepository           { return &memTaskRepo{s} }
func (s *memStore) Projects() domain.ProjectRepository     { return &memProjectRepo{s} }
func (s *memStore) Roles() domain.RoleRepository           { return &memRoleRepo{s} }
func (s *memStore) Users() domain.UserRepository           { return &memUserRepo{s} }
func (s *memStore) Audit() domain.AuditRepository          { return &memAuditRepo{s} }

func (s *memStore) WithTx(_ context.Context, fn func(domain.Store) error) error {
	return fn(s)
}

// --- developers ---

type memDeveloperRepo struct{ s *memStore }

func (r *memDeveloperRepo) Create(_ context.Context, d *domain.Developer) error {
	d.ID = r.s.id()
	r.s.developers[d.ID] = d
	return nil
}

func (r *memDeveloperRepo) GetByID(_ context.Context, id int64) (*domain.Developer, error) {
	d, ok := r.s.developers[id]
	if !ok {
		return nil, fmt.Errorf("memDeveloperRepo.GetByID: %w", domain.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (r *memDeveloperRepo) List(_ context.Context) ([]*domain.Developer, error) {
	out := make([]*domain.Developer, 0, len(r.s.developers))
	for _, d := range r.s.developers {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memDeveloperRepo) Update(_ context.Context, d *domain.Developer) error {
	if _, ok := r.s.developers[d.ID]; !ok {
		return fmt.Errorf("memDeveloperRepo.Update: %w", domain.ErrNotFound)
	}
	cp := *d
	r.s.developers[d.ID] = &cp
	return nil
}

func (r *memDeveloperRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.developers[id]; !ok {
		return fmt.Errorf("memDeveloperRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.s.developers, id)
	return nil
}

func (r *memDeveloperRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.developers[id]
	return ok, nil
}

// --- tasks ---

type memTaskRepo struct{ s *memStore }

func (r *memTaskRepo) Create(_ context.Context, t *domain.Task) error {
	t.ID = r.s.id()
	cp := *t
	r.s.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id int64) (*domain.Task, error) {
	t, ok := r.s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("memTaskRepo.GetByID: %w", domain.ErrNotFound)
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) List(_ context.Context) ([]*domain.Task, error) {
	return r.filter(func(*domain.Task) bool { return true }), nil
}

func (r *memTaskRepo) ListByDeveloper(_ context.Context, developerID int64) ([]*domain.Task, error) {
	return r.filter(func(t *domain.Task) bool { return t.AssignedTo(developerID) }), nil
}

func (r *memTaskRepo) ListByProject(_ context.Context, projectID int64) ([]*domain.Task, error) {
	return r.filter(func(t *domain.Task) bool {
		return t.ProjectID != nil && *t.ProjectID == projectID
	}), nil
}

func (r *memTaskRepo) ListByStatus(_ context.Context, completed bool) ([]*domain.Task, error) {
	return r.filter(func(t *domain.Task) bool { return t.Completed == completed }), nil
}

func (r *memTaskRepo) ListIDsByDeveloper(ctx context.Context, developerID int64) ([]int64, error) {
	tasks, _ := r.ListByDeveloper(ctx, developerID)
	ids := []int64{}
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (r *memTaskRepo) Update(_ context.Context, t *domain.Task) error {
	existing, ok := r.s.tasks[t.ID]
	if !ok {
		return fmt.Errorf("memTaskRepo.Update: %w", domain.ErrNotFound)
	}
	cp := *t
	cp.DeveloperID = existing.DeveloperID // Update never touches the assignment FK
	r.s.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) SetDeveloper(_ context.Context, id int64, developerID *int64) error {
	t, ok := r.s.tasks[id]
	if !ok {
		return fmt.Errorf("memTaskRepo.SetDeveloper: %w", domain.ErrNotFound)
	}
	t.DeveloperID = developerID
	return nil
}

func (r *memTaskRepo) ClearDeveloper(_ context.Context, developerID int64) error {
	for _, t := range r.s.tasks {
		if t.AssignedTo(developerID) {
			t.DeveloperID = nil
		}
	}
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.tasks[id]; !ok {
		return fmt.Errorf("memTaskRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.s.tasks, id)
	return nil
}

func (r *memTaskRepo) DeleteByProject(_ context.Context, projectID int64) (int64, error) {
	var n int64
	for id, t := range r.s.tasks {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			delete(r.s.tasks, id)
			n++
		}
	}
	return n, nil
}

func (r *memTaskRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.tasks[id]
	return ok, nil
}

func (r *memTaskRepo) filter(keep func(*domain.Task) bool) []*domain.Task {
	var out []*domain.Task
	for _, t := range r.s.tasks {
		if keep(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- projects ---

type memProjectRepo struct{ s *memStore }

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) error {
	p.ID = r.s.id()
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id int64) (*domain.Project, error) {
	p, ok := r.s.projects[id]
	if !ok {
		return nil, fmt.Errorf("memProjectRepo.GetByID: %w", domain.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.s.projects[p.ID]; !ok {
		return fmt.Errorf("memProjectRepo.Update: %w", domain.ErrNotFound)
	}
	cp := *p
	r.s.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.projects[id]; !ok {
		return fmt.Errorf("memProjectRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.s.projects, id)
	return nil
}

func (r *memProjectRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.projects[id]
	return ok, nil
}

// --- roles ---

type memRoleRepo struct{ s *memStore }

func (r *memRoleRepo) Create(_ context.Context, role *domain.Role) error {
	for _, existing := range r.s.roles {
		if existing.RoleName == role.RoleName {
			return fmt.Errorf("memRoleRepo.Create: %w", domain.ErrConflict)
		}
	}
	role.ID = r.s.id()
	cp := *role
	r.s.roles[role.ID] = &cp
	return nil
}

func (r *memRoleRepo) GetByName(_ context.Context, roleName string) (*domain.Role, error) {
	for _, role := range r.s.roles {
		if role.RoleName == roleName {
			cp := *role
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("memRoleRepo.GetByName: %w", domain.ErrNotFound)
}

func (r *memRoleRepo) List(_ context.Context) ([]*domain.Role, error) {
	out := make([]*domain.Role, 0, len(r.s.roles))
	for _, role := range r.s.roles {
		cp := *role
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRoleRepo) ExistsByName(ctx context.Context, roleName string) (bool, error) {
	_, err := r.GetByName(ctx, roleName)
	return err == nil, nil
}

func (r *memRoleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.roles[id]; !ok {
		return fmt.Errorf("memRoleRepo.Delete: %w", domain.ErrNotFound)
	}
	delete(r.s.roles, id)
	return nil
}

// --- users ---

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return fmt.Errorf("memUserRepo.Create: %w", domain.ErrConflict)
		}
	}
	u.ID = r.s.id()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("memUserRepo.GetByID: %w", domain.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("memUserRepo.GetByUsername: %w", domain.ErrNotFound)
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- audit ---

type memAuditRepo struct{ s *memStore }

func (r *memAuditRepo) Record(_ context.Context, entry *domain.AuditEntry) error {
	if r.s.auditRecordErr != nil {
		return r.s.auditRecordErr
	}
	cp := *entry
	r.s.audit = append(r.s.audit, &cp)
	return nil
}

func (r *memAuditRepo) FindAll(_ context.Context) ([]*domain.AuditEntry, error) {
	return r.filter(func(*domain.AuditEntry) bool { return true }), nil
}

func (r *memAuditRepo) FindByEntityType(_ context.Context, entityType string) ([]*domain.AuditEntry, error) {
	return r.filter(func(e *domain.AuditEntry) bool { return e.EntityType == entityType }), nil
}

func (r *memAuditRepo) FindByUsername(_ context.Context, username string) ([]*domain.AuditEntry, error) {
	return r.filter(func(e *domain.AuditEntry) bool { return e.Username == username }), nil
}

func (r *memAuditRepo) FindByEntityTypeAndUsername(_ context.Context, entityType, username string) ([]*domain.AuditEntry, error) {
	return r.filter(func(e *domain.AuditEntry) bool {
		return e.EntityType == entityType && e.Username == username
	}), nil
}

func (r *memAuditRepo) filter(keep func(*domain.AuditEntry) bool) []*domain.AuditEntry {
	var out []*domain.AuditEntry
	for _, e := range r.s.audit {
		if keep(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

// --- capture publisher ---

type capturePublisher struct {
	channels []string
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(_ context.Context, channel string, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.channels = append(p.channels, channel)
	p.payloads = append(p.payloads, payload)
	return nil
}
