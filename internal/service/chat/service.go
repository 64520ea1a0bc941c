package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"converse/internal/config"
	"converse/internal/domain"
	"converse/internal/domain/models"
	"converse/internal/domain/repositories"
	"converse/internal/domain/services"
	domainllm "converse/internal/domain/services/llm"
)

// ProviderResolver routes a model name to a completion provider.
// Satisfied by *llm.ProviderRegistry.
type ProviderResolver interface {
	Resolve(model string) (domainllm.Provider, error)
}

// Service implements the ChatService interface: the chat turn lifecycle plus
// session listing and deletion.
type Service struct {
	sessionRepo repositories.SessionRepository
	messageRepo repositories.MessageRepository
	providers   ProviderResolver
	authorizer  services.SessionAuthorizer
	txManager   repositories.TransactionManager
	model       string
	locks       *sessionLocks
	logger      *slog.Logger
}

// NewService creates a new chat service
func NewService(
	sessionRepo repositories.SessionRepository,
	messageRepo repositories.MessageRepository,
	providers ProviderResolver,
	authorizer services.SessionAuthorizer,
	txManager repositories.TransactionManager,
	model string,
	logger *slog.Logger,
) services.ChatService {
	return &Service{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		providers:   providers,
		authorizer:  authorizer,
		txManager:   txManager,
		model:       model,
		locks:       newSessionLocks(),
		logger:      logger,
	}
}

// SubmitMessage runs one chat turn.
//
// The user message is persisted before the model is invoked so the utterance
// is never lost; when the model call or the assistant write fails afterwards
// it stays in place as a visible unanswered turn. Nothing is rolled back and
// nothing is retried.
func (s *Service) SubmitMessage(ctx context.Context, req *services.SubmitMessageRequest) (*services.SubmitMessageResponse, error) {
	// Clients that echo an empty session_id mean the same as omitting it
	if req.SessionID != nil && *req.SessionID == "" {
		req.SessionID = nil
	}

	if err := s.validateSubmitMessageRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var sessionID string
	if req.SessionID == nil {
		session := &models.Session{
			UserID: req.UserID,
			Title:  deriveTitle(req.Message),
		}
		if err := s.sessionRepo.Create(ctx, session); err != nil {
			return nil, err
		}
		sessionID = session.ID

		s.logger.Info("session created",
			"session_id", sessionID,
			"user_id", req.UserID,
			"title", session.Title,
		)
	} else {
		sessionID = *req.SessionID
		if err := s.authorizer.CanAccessSession(ctx, req.UserID, sessionID); err != nil {
			return nil, err
		}
	}

	// Serialize turns per session so concurrent submits cannot interleave
	// their user/assistant message pairs.
	release := s.locks.Acquire(sessionID)
	defer release()

	userMessage := &models.Message{
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   req.Message,
	}
	if err := s.messageRepo.Append(ctx, userMessage); err != nil {
		return nil, err
	}

	provider, err := s.providers.Resolve(s.model)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve provider: %v", domain.ErrUpstream, err)
	}

	// Single-turn toward the model: only the current utterance is forwarded,
	// no conversation history.
	reply, err := provider.Generate(ctx, &domainllm.GenerateRequest{
		Prompt: req.Message,
		Model:  s.model,
	})
	if err != nil {
		s.logger.Error("model call failed",
			"session_id", sessionID,
			"user_id", req.UserID,
			"provider", provider.Name(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: generate reply: %v", domain.ErrUpstream, err)
	}

	assistantMessage := &models.Message{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   reply.Text,
	}
	if err := s.messageRepo.Append(ctx, assistantMessage); err != nil {
		return nil, fmt.Errorf("%w: persist reply: %v", domain.ErrUpstream, err)
	}

	s.logger.Info("chat turn completed",
		"session_id", sessionID,
		"user_id", req.UserID,
		"model", reply.Model,
	)

	return &services.SubmitMessageResponse{
		SessionID: sessionID,
		Response:  reply.Text,
	}, nil
}

// ListSessions retrieves the caller's sessions, newest first
func (s *Service) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	return s.sessionRepo.ListByOwner(ctx, userID)
}

// ListMessages retrieves a session's messages oldest first, after the
// ownership check.
func (s *Service) ListMessages(ctx context.Context, sessionID, userID string) ([]models.Message, error) {
	if err := s.authorizer.CanAccessSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	return s.messageRepo.ListBySession(ctx, sessionID)
}

// DeleteSession removes a session and all of its messages in one
// transaction, so no orphan messages survive the delete.
func (s *Service) DeleteSession(ctx context.Context, sessionID, userID string) error {
	if err := s.authorizer.CanAccessSession(ctx, userID, sessionID); err != nil {
		return err
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.messageRepo.DeleteBySession(txCtx, sessionID); err != nil {
			return err
		}
		return s.sessionRepo.Delete(txCtx, sessionID, userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("session deleted",
		"session_id", sessionID,
		"user_id", userID,
	)

	return nil
}

// deriveTitle builds a session title from the first few words of the first
// message plus an ellipsis marker. Derived once at session creation and
// never recomputed.
func deriveTitle(message string) string {
	words := strings.Fields(message)
	if len(words) > config.TitleWordCount {
		words = words[:config.TitleWordCount]
	}

	title := strings.Join(words, " ") + "..."
	if len(title) > config.MaxSessionTitleLength {
		title = title[:config.MaxSessionTitleLength]
	}
	return title
}

func (s *Service) validateSubmitMessageRequest(req *services.SubmitMessageRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Message,
			validation.Required,
			validation.Length(1, config.MaxMessageLength),
		),
		validation.Field(&req.SessionID, is.UUID),
	)
}
