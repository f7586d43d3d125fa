package server

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	v1 "github.com/ndungutse/project-tracker/internal/api/v1"
	"github.com/ndungutse/project-tracker/internal/api/ws"
)

func registerAuthRoutes(api huma.API, authSvc v1.AuthService) {
	v1.RegisterAuthRoutes(api, authSvc)
}

func (s *Server) registerAPIRoutes(api huma.API) {
	v1.RegisterDeveloperRoutes(api, s.developers)
	v1.RegisterTaskRoutes(api, s.tasks)
	v1.RegisterProjectRoutes(api, s.projects)
	v1.RegisterLogRoutes(api, s.audit)
}

func (s *Server) registerAdminRoutes(api huma.API) {
	v1.RegisterRoleRoutes(api, s.roles)
}

func registerWSRoutes(r chi.Router, hub *ws.Hub) {
	r.Get("/logs", hub.ServeLogs)
}
