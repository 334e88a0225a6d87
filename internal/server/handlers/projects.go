package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/fullstackvibes/folio/internal/server/middleware"
	"github.com/fullstackvibes/folio/internal/showcase"
)

// ProjectsHandler serves the portfolio project listing.
type ProjectsHandler struct {
	Service *showcase.Service
	Logger  *zap.Logger
}

// ServeHTTP handles GET /api/projects.
func (h *ProjectsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.Projects(r.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("project listing failed",
				zap.Error(err),
				zap.String("request_id", middleware.GetRequestID(r.Context())))
		}
		writeError(w, http.StatusInternalServerError, "Failed to load projects")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"projects": projects})
}
