package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fullstackvibes/folio/internal/mail"
	"github.com/fullstackvibes/folio/internal/ratelimit"
	"github.com/fullstackvibes/folio/internal/server/middleware"
)

// emailPattern is the basic local@domain.tld shape check; deliverability
// is the provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactRequest is the contact-form submission body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactHandler validates and relays contact-form submissions to the
// site owner through the mail provider, guarded by the rate limiter.
type ContactHandler struct {
	Limiter *ratelimit.Limiter
	Sender  mail.Sender
	From    string
	To      string
	Logger  *zap.Logger
}

// ServeHTTP handles POST /api/contact.
//
// Order matters: rate limit first (cheapest rejection), then parse, then
// validate, then dispatch. resetIn is whole seconds, rounded up, in both
// the body and the X-RateLimit-Reset header.
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	decision := h.Limiter.Check(clientKey(r))
	if !decision.Allowed {
		resetSeconds := int(math.Ceil(decision.ResetIn.Seconds()))
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetSeconds))
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":   "Too many requests. Please try again later.",
			"resetIn": resetSeconds,
		})
		return
	}

	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if field := firstMissingField(&req); field != "" {
		writeError(w, http.StatusBadRequest, field+" is required")
		return
	}

	if !emailPattern.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	msg, err := mail.NewContactMessage(h.From, h.To, req.Name, req.Email, req.Message)
	if err != nil {
		h.logError("build contact email failed", err, r)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	id, err := h.Sender.Send(r.Context(), msg)
	if err != nil {
		h.logError("contact email dispatch failed", err, r)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	if h.Logger != nil {
		h.Logger.Info("contact email sent",
			zap.String("id", id),
			zap.String("request_id", middleware.GetRequestID(r.Context())))
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Message sent successfully",
		"id":      id,
	})
}

func firstMissingField(req *ContactRequest) string {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return "name"
	case strings.TrimSpace(req.Email) == "":
		return "email"
	case strings.TrimSpace(req.Message) == "":
		return "message"
	}
	return ""
}

func (h *ContactHandler) logError(msg string, err error, r *http.Request) {
	if h.Logger == nil {
		return
	}
	h.Logger.Error(msg,
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(r.Context())))
}
