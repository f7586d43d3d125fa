package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/ndungutse/project-tracker/internal/api/v1"
	"github.com/ndungutse/project-tracker/internal/service"
)

func TestListLogs(t *testing.T) {
	t.Parallel()

	t.Run("no_filters", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		audit := &mockAuditService{
			logsFunc: func(_ context.Context, entityType, username string) ([]*service.AuditLogDTO, error) {
				assert.Empty(t, entityType)
				assert.Empty(t, username)
				return []*service.AuditLogDTO{
					{ID: "a1", Action: "CREATE", EntityType: "Task", EntityID: 1, Username: "alice", Timestamp: time.Now()},
				}, nil
			},
		}
		v1.RegisterLogRoutes(api, audit)

		resp := api.GetCtx(userCtx("alice"), "/logs")

		require.Equal(t, http.StatusOK, resp.Code)

		var body []*service.AuditLogDTO
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "CREATE", body[0].Action)
	})

	t.Run("filters_forwarded", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		audit := &mockAuditService{
			logsFunc: func(_ context.Context, entityType, username string) ([]*service.AuditLogDTO, error) {
				assert.Equal(t, "Task", entityType)
				assert.Equal(t, "bob", username)
				return []*service.AuditLogDTO{}, nil
			},
		}
		v1.RegisterLogRoutes(api, audit)

		resp := api.GetCtx(userCtx("alice"), "/logs?entityType=Task&username=bob")

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("store_error_returns_500", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		audit := &mockAuditService{
			logsFunc: func(_ context.Context, _, _ string) ([]*service.AuditLogDTO, error) {
				return nil, errors.New("database unavailable")
			},
		}
		v1.RegisterLogRoutes(api, audit)

		resp := api.GetCtx(userCtx("alice"), "/logs")

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
