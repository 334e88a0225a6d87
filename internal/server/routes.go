package server

import (
	"encoding/json"
	"net/http"

	"github.com/fullstackvibes/folio/internal/server/handlers"
)

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes() {
	s.router.Get("/health", handlers.HealthHandler)
	s.router.Get("/health/live", handlers.LivenessHandler)
	s.router.Get("/health/ready", handlers.ReadinessHandler)

	s.router.Get("/version", handlers.VersionHandler)

	if s.opts.Contact != nil {
		s.router.Post("/api/contact", s.opts.Contact.ServeHTTP)
	}
	if s.opts.Chat != nil {
		s.router.Post("/api/chat", s.opts.Chat.ServeHTTP)
	}
	if s.opts.Projects != nil {
		s.router.Get("/api/projects", s.opts.Projects.ServeHTTP)
	}
}

func writeErrorEnvelope(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
