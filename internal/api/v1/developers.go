package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ndungutse/project-tracker/internal/domain"
	"github.com/ndungutse/project-tracker/internal/server/middleware"
	"github.com/ndungutse/project-tracker/internal/service"
)

type CreateDeveloperInput struct {
	Body struct {
		Name   string `json:"name" minLength:"1" maxLength:"255" doc:"Developer name"`
		Email  string `json:"email" minLength:"3" maxLength:"255" doc:"Developer email"`
		Skills string `json:"skills,omitempty" doc:"Comma-separated skills"`
	}
}

type CreateDeveloperOutput struct {
	Body *service.DeveloperDTO
}

type ListDevelopersInput struct{}

type ListDevelopersOutput struct {
	Body []*service.DeveloperDTO
}

type GetDeveloperInput struct {
	ID int64 `path:"id" doc:"Developer ID"`
}

type GetDeveloperOutput struct {
	Body *service.DeveloperDTO
}

type UpdateDeveloperInput struct {
	ID   int64 `path:"id" doc:"Developer ID"`
	Body struct {
		Name   string `json:"name,omitempty" maxLength:"255" doc:"Developer name"`
		Email  string `json:"email,omitempty" maxLength:"255" doc:"Developer email"`
		Skills string `json:"skills,omitempty" doc:"Comma-separated skills"`
	}
}

type UpdateDeveloperOutput struct {
	Body *service.DeveloperDTO
}

type DeleteDeveloperInput struct {
	ID int64 `path:"id" doc:"Developer ID"`
}

type AssignTaskInput struct {
	ID     int64 `path:"id" doc:"Developer ID"`
	TaskID int64 `path:"taskId" doc:"Task ID"`
}

type AssignTaskOutput struct {
	Body *service.DeveloperDTO
}

type RemoveTaskInput struct {
	ID     int64 `path:"id" doc:"Developer ID"`
	TaskID int64 `path:"taskId" doc:"Task ID"`
}

type RemoveTaskOutput struct {
	Body *service.DeveloperDTO
}

func RegisterDeveloperRoutes(api huma.API, developers DeveloperService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-developer",
		Method:        http.MethodPost,
		Path:          "/developers",
		Summary:       "Create a new developer",
		Tags:          []string{"Developers"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateDeveloperInput) (*CreateDeveloperOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		d, err := developers.Create(ctx, username, input.Body.Name, input.Body.Email, input.Body.Skills)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to create developer", err)
		}

		return &CreateDeveloperOutput{Body: d}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-developers",
		Method:      http.MethodGet,
		Path:        "/developers",
		Summary:     "List all developers",
		Tags:        []string{"Developers"},
	}, func(ctx context.Context, _ *ListDevelopersInput) (*ListDevelopersOutput, error) {
		devs, err := developers.GetAll(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list developers", err)
		}

		return &ListDevelopersOutput{Body: devs}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-developer",
		Method:      http.MethodGet,
		Path:        "/developers/{id}",
		Summary:     "Get a developer by ID",
		Tags:        []string{"Developers"},
	}, func(ctx context.Context, input *GetDeveloperInput) (*GetDeveloperOutput, error) {
		d, err := developers.GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("developer not found")
			}
			return nil, huma.Error500InternalServerError("failed to get developer", err)
		}

		return &GetDeveloperOutput{Body: d}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-developer",
		Method:      http.MethodPatch,
		Path:        "/developers/{id}",
		Summary:     "Update a developer",
		Tags:        []string{"Developers"},
	}, func(ctx context.Context, input *UpdateDeveloperInput) (*UpdateDeveloperOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		d, err := developers.Update(ctx, username, input.ID, service.DeveloperPatch{
			Name:   input.Body.Name,
			Email:  input.Body.Email,
			Skills: input.Body.Skills,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("developer not found")
			}
			return nil, huma.Error500InternalServerError("failed to update developer", err)
		}

		return &UpdateDeveloperOutput{Body: d}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-developer",
		Method:      http.MethodDelete,
		Path:        "/developers/{id}",
		Summary:     "Delete a developer",
		Tags:        []string{"Developers"},
	}, func(ctx context.Context, input *DeleteDeveloperInput) (*struct{}, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		if err := developers.Delete(ctx, username, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("developer not found")
			}
			return nil, huma.Error500InternalServerError("failed to delete developer", err)
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "assign-task-to-developer",
		Method:      http.MethodPost,
		Path:        "/developers/{id}/tasks/{taskId}",
		Summary:     "Assign a task to a developer",
		Tags:        []string{"Developers"},
	}, func(ctx context.Context, input *AssignTaskInput) (*AssignTaskOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		d, err := developers.AssignTask(ctx, username, input.ID, input.TaskID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("developer or task not found")
			}
			return nil, huma.Error500InternalServerError("failed to assign task", err)
		}

		return &AssignTaskOutput{Body: d}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-task-from-developer",
		Method:      http.MethodDelete,
		Path:        "/developers/{id}/tasks/{taskId}",
		Summary:     "Remove a task from a developer",
		Tags:        []string{"Developers"},
	}, func(ctx context.Context, input *RemoveTaskInput) (*RemoveTaskOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		d, err := developers.RemoveTask(ctx, username, input.ID, input.TaskID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("developer, task, or assignment not found")
			}
			return nil, huma.Error500InternalServerError("failed to remove task", err)
		}

		return &RemoveTaskOutput{Body: d}, nil
	})
}
