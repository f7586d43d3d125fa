package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ndungutse/project-tracker/internal/service"
)

type ListLogsInput struct {
	EntityType string `query:"entityType" doc:"Filter by entity type, e.g. Task"`
	Username   string `query:"username" doc:"Filter by acting username"`
}

type ListLogsOutput struct {
	Body []*service.AuditLogDTO
}

func RegisterLogRoutes(api huma.API, audit AuditService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-logs",
		Method:      http.MethodGet,
		Path:        "/logs",
		Summary:     "List audit log entries, most recent first",
		Tags:        []string{"Logs"},
	}, func(ctx context.Context, input *ListLogsInput) (*ListLogsOutput, error) {
		entries, err := audit.Logs(ctx, input.EntityType, input.Username)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to list audit logs", err)
		}

		return &ListLogsOutput{Body: entries}, nil
	})
}
