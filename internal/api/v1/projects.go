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

type CreateProjectInput struct {
	Body struct {
		Name        string    `json:"name" minLength:"1" maxLength:"255" doc:"Project name"`
		Description string    `json:"description,omitempty" doc:"Project description"`
		Deadline    time.Time `json:"deadline,omitempty" doc:"Project deadline"`
	}
}

type CreateProjectOutput struct {
	Body *service.ProjectDTO
}

type ListProjectsInput struct{}

type ListProjectsOutput struct {
	Body []*service.ProjectDTO
}

type GetProjectInput struct {
	ID int64 `path:"id" doc:"Project ID"`
}

type GetProjectOutput struct {
	Body *service.ProjectDTO
}

type UpdateProjectInput struct {
	ID   int64 `path:"id" doc:"Project ID"`
	Body struct {
		Name        string     `json:"name,omitempty" maxLength:"255" doc:"Project name"`
		Description string     `json:"description,omitempty" doc:"Project description"`
		Deadline    *time.Time `json:"deadline,omitempty" doc:"Project deadline"`
	}
}

type UpdateProjectOutput struct {
	Body *service.ProjectDTO
}

type DeleteProjectInput struct {
	ID int64 `path:"id" doc:"Project ID"`
}

func RegisterProjectRoutes(api huma.API, projects ProjectService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-project",
		Method:        http.MethodPost,
		Path:          "/projects",
		Summary:       "Create a new project",
		Tags:          []string{"Projects"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		p, err := projects.Create(ctx, username, input.Body.Name, input.Body.Description, input.Body.Deadline)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to create project", err)
		}

		return &CreateProjectOutput{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List all projects",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, _ *ListProjectsInput) (*ListProjectsOutput, error) {
		list, err := projects.GetAll(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list projects", err)
		}

		return &ListProjectsOutput{Body: list}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-project",
		Method:      http.MethodGet,
		Path:        "/projects/{id}",
		Summary:     "Get a project by ID",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *GetProjectInput) (*GetProjectOutput, error) {
		p, err := projects.GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("project not found")
			}
			return nil, huma.Error500InternalServerError("failed to get project", err)
		}

		return &GetProjectOutput{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-project",
		Method:      http.MethodPatch,
		Path:        "/projects/{id}",
		Summary:     "Update a project",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *UpdateProjectInput) (*UpdateProjectOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		p, err := projects.Update(ctx, username, input.ID, service.ProjectPatch{
			Name:        input.Body.Name,
			Description: input.Body.Description,
			Deadline:    input.Body.Deadline,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("project not found")
			}
			return nil, huma.Error500InternalServerError("failed to update project", err)
		}

		return &UpdateProjectOutput{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-project",
		Method:      http.MethodDelete,
		Path:        "/projects/{id}",
		Summary:     "Delete a project and its tasks",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *DeleteProjectInput) (*struct{}, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		if err := projects.Delete(ctx, username, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("project not found")
			}
			return nil, huma.Error500InternalServerError("failed to delete project", err)
		}

		return nil, nil
	})
}
