package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ndungutse/project-tracker/internal/domain"
	"github.com/ndungutse/project-tracker/internal/server/middleware"
	"github.com/ndungutse/project-tracker/internal/service"
)

type CreateTaskInput struct {
	Body struct {
		Title       string    `json:"title" minLength:"1" maxLength:"500" doc:"Task title"`
		Description string    `json:"description,omitempty" doc:"Task description"`
		DueDate     time.Time `json:"dueDate,omitempty" doc:"Due date"`
		ProjectID   *int64    `json:"projectId,omitempty" doc:"Owning project ID"`
	}
}

type CreateTaskOutput struct {
	Body *service.TaskDTO
}

type ListTasksInput struct {
	Status      *bool  `query:"status" doc:"Filter by completion status"`
	DeveloperID *int64 `query:"developerId" doc:"Filter by assigned developer"`
	ProjectID   *int64 `query:"projectId" doc:"Filter by owning project"`
}

type ListTasksOutput struct {
	Body []*service.TaskDTO
}

type GetTaskInput struct {
	ID int64 `path:"id" doc:"Task ID"`
}

type GetTaskOutput struct {
	Body *service.TaskDTO
}

type UpdateTaskInput struct {
	ID   int64 `path:"id" doc:"Task ID"`
	Body struct {
		Title       string     `json:"title,omitempty" maxLength:"500" doc:"Task title"`
		Description string     `json:"description,omitempty" doc:"Task description"`
		Status      *bool      `json:"status,omitempty" doc:"Completion status"`
		DueDate     *time.Time `json:"dueDate,omitempty" doc:"Due date"`
	}
}

type UpdateTaskOutput struct {
	Body *service.TaskDTO
}

type DeleteTaskInput struct {
	ID int64 `path:"id" doc:"Task ID"`
}

func RegisterTaskRoutes(api huma.API, tasks TaskService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-task",
		Method:        http.MethodPost,
		Path:          "/tasks",
		Summary:       "Create a new task",
		Tags:          []string{"Tasks"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateTaskInput) (*CreateTaskOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		t, err := tasks.Create(ctx, username, input.Body.Title, input.Body.Description, input.Body.DueDate, input.Body.ProjectID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("project not found")
			}
			return nil, huma.Error500InternalServerError("failed to create task", err)
		}

		return &CreateTaskOutput{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/tasks",
		Summary:     "List tasks, optionally filtered by status, developer, or project",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *ListTasksInput) (*ListTasksOutput, error) {
		var (
			list []*service.TaskDTO
			err  error
		)

		switch {
		case input.DeveloperID != nil:
			list, err = tasks.GetByDeveloper(ctx, *input.DeveloperID)
		case input.ProjectID != nil:
			list, err = tasks.GetByProject(ctx, *input.ProjectID)
		case input.Status != nil:
			list, err = tasks.GetByStatus(ctx, *input.Status)
		default:
			list, err = tasks.GetAll(ctx)
		}
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list tasks", err)
		}

		return &ListTasksOutput{Body: list}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-task",
		Method:      http.MethodGet,
		Path:        "/tasks/{id}",
		Summary:     "Get a task by ID",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *GetTaskInput) (*GetTaskOutput, error) {
		t, err := tasks.GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("task not found")
			}
			return nil, huma.Error500InternalServerError("failed to get task", err)
		}

		return &GetTaskOutput{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-task",
		Method:      http.MethodPatch,
		Path:        "/tasks/{id}",
		Summary:     "Update a task",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *UpdateTaskInput) (*UpdateTaskOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		t, err := tasks.Update(ctx, username, input.ID, service.TaskPatch{
			Title:       input.Body.Title,
			Description: input.Body.Description,
			Status:      input.Body.Status,
			DueDate:     input.Body.DueDate,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("task not found")
			}
			return nil, huma.Error500InternalServerError("failed to update task", err)
		}

		return &UpdateTaskOutput{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-task",
		Method:      http.MethodDelete,
		Path:        "/tasks/{id}",
		Summary:     "Delete a task",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *DeleteTaskInput) (*struct{}, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		if err := tasks.Delete(ctx, username, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("task not found")
			}
			return nil, huma.Error500InternalServerError("failed to delete task", err)
		}

		return nil, nil
	})
}
