package service

import (
	"time"

	"github.com/ndungutse/project-tracker/internal/domain"
)

// Transfer records exposed at the API boundary. Associations are reduced
// to bare ids.

type DeveloperDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Skills  string  `json:"skills"`
	TaskIDs []int64 `json:"taskIds"`
}

type TaskDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	ProjectID   *int64    `json:"projectId,omitempty"`
	DeveloperID *int64    `json:"developerId,omitempty"`
}

type ProjectDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	CreatedAt   time.Time `json:"createdAt"`
	TaskIDs     []int64   `json:"taskIds"`
}

type RoleDTO struct {
	ID       int64  `json:"id"`
	RoleName string `json:"roleName"`
}

type AuditLogDTO struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	EntityType   string    `json:"entityType"`
	EntityID     int64     `json:"entityId"`
	Username     string    `json:"username"`
	Timestamp    time.Time `json:"timestamp"`
	DataSnapshot string    `json:"dataSnapshot"`
}

func taskToDTO(t *domain.Task) *TaskDTO {
	return &TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Completed,
		DueDate:     t.DueDate,
		ProjectID:   t.ProjectID,
		DeveloperID: t.DeveloperID,
	}
}

func tasksToDTOs(tasks []*domain.Task) []*TaskDTO {
	dtos := make([]*TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		dtos = append(dtos, taskToDTO(t))
	}
	return dtos
}

func roleToDTO(r *domain.Role) *RoleDTO {
	return &RoleDTO{ID: r.ID, RoleName: r.RoleName}
}

func auditToDTO(e *domain.AuditEntry) *AuditLogDTO {
	return &AuditLogDTO{
		ID:           e.ID.String(),
		Action:       string(e.Action),
		EntityType:   e.EntityType,
		EntityID:     e.EntityID,
		Username:     e.Username,
		Timestamp:    e.Timestamp,
		DataSnapshot: e.DataSnapshot,
	}
}
