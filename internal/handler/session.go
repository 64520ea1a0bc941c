package handler

import (
	"log/slog"
	"net/http"

	"converse/internal/domain/services"
	"converse/internal/httputil"
)

// SessionHandler handles session listing, history and deletion
type SessionHandler struct {
	chatService services.ChatService
	logger      *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(chatService services.ChatService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ListSessions retrieves all past chat sessions for the caller, newest first
// GET /sessions
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	sessions, err := h.chatService.ListSessions(r.Context(), userID)
	if err != nil {
		h.logger.Error("list sessions failed", "user_id", userID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sessions)
}

// ListMessages retrieves all messages for a session, oldest first
// GET /sessions/{id}
// Responds 404 when the session is absent or owned by another user.
func (h *SessionHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := PathParam(w, r, "id", "Session ID")
	if !ok {
		return
	}

	userID := httputil.GetUserID(r)
	messages, err := h.chatService.ListMessages(r.Context(), sessionID, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, messages)
}

// DeleteSession deletes a session and all its messages
// DELETE /sessions/{id}
// Responds 404 when the session is absent or owned by another user.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := PathParam(w, r, "id", "Session ID")
	if !ok {
		return
	}

	userID := httputil.GetUserID(r)
	if err := h.chatService.DeleteSession(r.Context(), sessionID, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
