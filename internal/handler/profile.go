package handler

import (
	"log/slog"
	"net/http"

	"converse/internal/domain/services"
	"converse/internal/httputil"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	service services.ProfileService
	logger  *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service services.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger,
	}
}

// GetProfile retrieves the caller's profile, creating it on first access
// GET /profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.logger.Error("get profile failed", "user_id", userID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, profile)
}

// UpdateProfile applies a partial update to the caller's profile
// PUT /profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.UpdateProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		h.logger.Error("update profile failed", "user_id", userID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, profile)
}
