package handler

import (
	"log/slog"
	"net/http"

	"converse/internal/domain/services"
	"converse/internal/httputil"
)

// ChatHandler handles chat HTTP requests
// Handlers only communicate with services, never repositories
type ChatHandler struct {
	chatService services.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// SubmitMessage handles a new chat message from the user
// POST /chat
func (h *ChatHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.SubmitMessageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	req.UserID = userID

	response, err := h.chatService.SubmitMessage(r.Context(), &req)
	if err != nil {
		h.logger.Error("chat turn failed", "user_id", userID, "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, response)
}
