package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/fullstackvibes/folio/internal/assist"
	"github.com/fullstackvibes/folio/internal/server/middleware"
)

// ChatRequest carries the full conversation on every call; the proxy keeps
// no state between requests.
type ChatRequest struct {
	Messages []assist.Turn `json:"messages"`
}

// ChatHandler forwards conversations to the assistant and returns the
// plain-text reply.
type ChatHandler struct {
	Assistant *assist.Assistant
	Logger    *zap.Logger
}

// ServeHTTP handles POST /api/chat. Provider failures of any kind map to
// one generic 500 envelope; the browser shows a canned fallback with a
// direct-contact address, so detail would not help the caller.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := h.Assistant.Reply(r.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, assist.ErrNotConfigured) {
			writeError(w, http.StatusInternalServerError, "API key not configured")
			return
		}
		if h.Logger != nil {
			h.Logger.Error("chat completion failed",
				zap.Error(err),
				zap.String("request_id", middleware.GetRequestID(r.Context())))
		}
		writeError(w, http.StatusInternalServerError, "Failed to get response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": reply})
}
