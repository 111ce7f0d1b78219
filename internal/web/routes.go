package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/aerogate/internal/access"
	"github.com/kozaktomas/aerogate/internal/database"
	"github.com/kozaktomas/aerogate/internal/web/handlers"
)

func (s *Server) setupRoutes(service *access.Service, members database.MemberStore, logs database.AccessLogStore) {
	// Create handlers
	gateHandler := handlers.NewGateHandler(service)
	logsHandler := handlers.NewLogsHandler(logs, s.config.Gate.TerminalID)
	membersHandler := handlers.NewMembersHandler(members)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Gate operations
		r.Post("/enroll", gateHandler.Enroll)
		r.Post("/verify", gateHandler.Verify)

		// Audit trail
		r.Get("/logs", logsHandler.List)

		// Dashboard
		r.Get("/members/count", membersHandler.Count)
	})
}
