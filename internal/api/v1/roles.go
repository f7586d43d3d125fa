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

type CreateRoleInput struct {
	Body struct {
		RoleName string `json:"roleName" minLength:"1" maxLength:"100" doc:"Role name, e.g. ROLE_ADMIN"`
	}
}

type CreateRoleOutput struct {
	Body *service.RoleDTO
}

type ListRolesInput struct{}

type ListRolesOutput struct {
	Body []*service.RoleDTO
}

type GetRoleInput struct {
	Name string `path:"name" doc:"Role name"`
}

type GetRoleOutput struct {
	Body *service.RoleDTO
}

type DeleteRoleInput struct {
	ID int64 `path:"id" doc:"Role ID"`
}

func RegisterRoleRoutes(api huma.API, roles RoleService) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-role",
		Method:        http.MethodPost,
		Path:          "/roles",
		Summary:       "Create a new role",
		Tags:          []string{"Roles"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *CreateRoleInput) (*CreateRoleOutput, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		r, err := roles.Create(ctx, username, input.Body.RoleName)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return nil, huma.Error409Conflict("role already exists")
			}
			return nil, huma.Error500InternalServerError("failed to create role", err)
		}

		return &CreateRoleOutput{Body: r}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-roles",
		Method:      http.MethodGet,
		Path:        "/roles",
		Summary:     "List all roles",
		Tags:        []string{"Roles"},
	}, func(ctx context.Context, _ *ListRolesInput) (*ListRolesOutput, error) {
		list, err := roles.GetAll(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list roles", err)
		}

		return &ListRolesOutput{Body: list}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-role",
		Method:      http.MethodGet,
		Path:        "/roles/{name}",
		Summary:     "Get a role by name",
		Tags:        []string{"Roles"},
	}, func(ctx context.Context, input *GetRoleInput) (*GetRoleOutput, error) {
		r, err := roles.GetByName(ctx, input.Name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("role not found")
			}
			return nil, huma.Error500InternalServerError("failed to get role", err)
		}

		return &GetRoleOutput{Body: r}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-role",
		Method:      http.MethodDelete,
		Path:        "/roles/{id}",
		Summary:     "Delete a role",
		Tags:        []string{"Roles"},
	}, func(ctx context.Context, input *DeleteRoleInput) (*struct{}, error) {
		username, ok := middleware.UsernameFromContext(ctx)
		if !ok {
			return nil, huma.Error403Forbidden("missing user context")
		}

		if err := roles.Delete(ctx, username, input.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, huma.Error404NotFound("role not found")
			}
			if errors.Is(err, domain.ErrConflict) {
				return nil, huma.Error409Conflict("role is still assigned to users")
			}
			return nil, huma.Error500InternalServerError("failed to delete role", err)
		}

		return nil, nil
	})
}
