package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"converse/internal/domain"
	"converse/internal/domain/models"
	"converse/internal/domain/services"
	"converse/internal/httputil"
)

// stubChatService records calls and returns canned results
type stubChatService struct {
	submitResp *services.SubmitMessageResponse
	submitErr  error
	sessions   []models.Session
	messages   []models.Message
	err        error

	lastUserID    string
	lastSessionID string
}

func (s *stubChatService) SubmitMessage(ctx context.Context, req *services.SubmitMessageRequest) (*services.SubmitMessageResponse, error) {
	s.lastUserID = req.UserID
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.submitResp, nil
}

func (s *stubChatService) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	s.lastUserID = userID
	return s.sessions, s.err
}

func (s *stubChatService) ListMessages(ctx context.Context, sessionID, userID string) ([]models.Message, error) {
	s.lastUserID = userID
	s.lastSessionID = sessionID
	if s.err != nil {
		return nil, s.err
	}
	return s.messages, nil
}

func (s *stubChatService) DeleteSession(ctx context.Context, sessionID, userID string) error {
	s.lastUserID = userID
	s.lastSessionID = sessionID
	return s.err
}

type stubProfileService struct {
	profile *models.Profile
	err     error
}

func (s *stubProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profile, s.err
}

func (s *stubProfileService) UpdateProfile(ctx context.Context, userID string, req *services.UpdateProfileRequest) (*models.Profile, error) {
	return s.profile, s.err
}

// newTestMux wires the handlers onto the same route patterns the server uses,
// with the authenticated user injected directly into the request context.
func newTestMux(chatSvc services.ChatService, profileSvc services.ProfileService) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	chatHandler := NewChatHandler(chatSvc, logger)
	sessionHandler := NewSessionHandler(chatSvc, logger)
	profileHandler := NewProfileHandler(profileSvc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", chatHandler.SubmitMessage)
	mux.HandleFunc("GET /sessions", sessionHandler.ListSessions)
	mux.HandleFunc("GET /sessions/{id}", sessionHandler.ListMessages)
	mux.HandleFunc("DELETE /sessions/{id}", sessionHandler.DeleteSession)
	mux.HandleFunc("GET /profile", profileHandler.GetProfile)
	mux.HandleFunc("PUT /profile", profileHandler.UpdateProfile)
	mux.HandleFunc("GET /health", HealthCheck)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, httputil.WithUserID(r, "user-1"))
	})
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSubmitMessage_Handler(t *testing.T) {
	upstreamErr := fmt.Errorf("%w: generate reply: provider unreachable", domain.ErrUpstream)
	validationErr := fmt.Errorf("%w: message: cannot be blank", domain.ErrValidation)
	notFoundErr := fmt.Errorf("session x: %w", domain.ErrNotFound)

	tests := []struct {
		name       string
		body       string
		svc        *stubChatService
		wantStatus int
		wantDetail string
	}{
		{
			name: "successful turn",
			body: `{"message": "hello"}`,
			svc: &stubChatService{
				submitResp: &services.SubmitMessageResponse{SessionID: "sess-1", Response: "hi"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"message":`,
			svc:        &stubChatService{},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "validation failure",
			body:       `{"message": ""}`,
			svc:        &stubChatService{submitErr: validationErr},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "foreign session",
			body:       `{"session_id": "x", "message": "hello"}`,
			svc:        &stubChatService{submitErr: notFoundErr},
			wantStatus: http.StatusNotFound,
			wantDetail: "not found",
		},
		{
			name:       "upstream failure hidden behind generic 500",
			body:       `{"message": "hello"}`,
			svc:        &stubChatService{submitErr: upstreamErr},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestMux(tt.svc, &stubProfileService{})
			rec := doRequest(t, h, http.MethodPost, "/chat", tt.body)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantDetail != "" {
				var problem httputil.ProblemDetail
				if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
					t.Fatalf("response is not problem+json: %v", err)
				}
				if problem.Detail != tt.wantDetail {
					t.Errorf("detail = %q, want %q", problem.Detail, tt.wantDetail)
				}
				if strings.Contains(rec.Body.String(), "unreachable") {
					t.Error("raw upstream detail leaked to the client")
				}
			}
			if rec.Code == http.StatusOK {
				var resp services.SubmitMessageResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.SessionID != "sess-1" || resp.Response != "hi" {
					t.Errorf("unexpected response payload: %+v", resp)
				}
			}
		})
	}
}

func TestSubmitMessage_UsesVerifiedIdentity(t *testing.T) {
	svc := &stubChatService{
		submitResp: &services.SubmitMessageResponse{SessionID: "sess-1", Response: "hi"},
	}
	h := newTestMux(svc, &stubProfileService{})

	// A client-supplied user id must be ignored in favor of the verified one
	rec := doRequest(t, h, http.MethodPost, "/chat", `{"message": "hello", "user_id": "attacker"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastUserID != "user-1" {
		t.Errorf("service saw user %q, want the verified user-1", svc.lastUserID)
	}
}

func TestListSessions_Handler(t *testing.T) {
	svc := &stubChatService{
		sessions: []models.Session{{ID: "sess-2", Title: "newer..."}, {ID: "sess-1", Title: "older..."}},
	}
	h := newTestMux(svc, &stubProfileService{})

	rec := doRequest(t, h, http.MethodGet, "/sessions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var sessions []models.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != "sess-2" {
		t.Errorf("unexpected session list: %+v", sessions)
	}
	if svc.lastUserID != "user-1" {
		t.Errorf("service saw user %q, want user-1", svc.lastUserID)
	}
}

func TestListMessages_Handler(t *testing.T) {
	notFoundErr := fmt.Errorf("session x: %w", domain.ErrNotFound)

	tests := []struct {
		name       string
		svc        *stubChatService
		wantStatus int
	}{
		{
			name:       "owned session",
			svc:        &stubChatService{messages: []models.Message{{ID: "msg-1", Role: models.RoleUser, Content: "hi"}}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "absent or foreign session",
			svc:        &stubChatService{err: notFoundErr},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestMux(tt.svc, &stubProfileService{})
			rec := doRequest(t, h, http.MethodGet, "/sessions/sess-1", "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.svc.lastSessionID != "sess-1" {
				t.Errorf("service saw session %q, want sess-1", tt.svc.lastSessionID)
			}
		})
	}
}

func TestDeleteSession_Handler(t *testing.T) {
	tests := []struct {
		name       string
		svc        *stubChatService
		wantStatus int
	}{
		{
			name:       "owned session",
			svc:        &stubChatService{},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "absent or foreign session",
			svc:        &stubChatService{err: fmt.Errorf("session x: %w", domain.ErrNotFound)},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestMux(tt.svc, &stubProfileService{})
			rec := doRequest(t, h, http.MethodDelete, "/sessions/sess-1", "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusNoContent && rec.Body.Len() != 0 {
				t.Errorf("204 response must have no body, got %q", rec.Body.String())
			}
		})
	}
}

func TestProfile_Handler(t *testing.T) {
	fullName := "Ada Lovelace"
	profileSvc := &stubProfileService{
		profile: &models.Profile{UserID: "user-1", FullName: &fullName},
	}
	h := newTestMux(&stubChatService{}, profileSvc)

	rec := doRequest(t, h, http.MethodGet, "/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /profile status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ada Lovelace") {
		t.Errorf("profile payload missing full name: %s", rec.Body.String())
	}

	rec = doRequest(t, h, http.MethodPut, "/profile", `{"full_name": "Ada Lovelace"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /profile status = %d, want 200", rec.Code)
	}

	rec = doRequest(t, h, http.MethodPut, "/profile", `{"full_name":`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("malformed PUT /profile status = %d, want 422", rec.Code)
	}
}

func TestHealthCheck_Handler(t *testing.T) {
	h := newTestMux(&stubChatService{}, &stubProfileService{})

	rec := doRequest(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}
