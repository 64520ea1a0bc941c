package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"converse/internal/auth"
	"converse/internal/config"
	"converse/internal/handler"
	"converse/internal/middleware"
	"converse/internal/repository/postgres"
	serviceAuth "converse/internal/service/auth"
	"converse/internal/service/chat"
	serviceLLM "converse/internal/service/llm"
	"converse/internal/service/profile"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	sessionRepo := postgres.NewSessionRepository(repoConfig)
	messageRepo := postgres.NewMessageRepository(repoConfig)
	profileRepo := postgres.NewProfileRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Setup completion providers
	providerRegistry, err := serviceLLM.SetupProviders(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup completion providers: %v", err)
	}

	// Create services
	authorizer := serviceAuth.NewOwnerAuthorizer(sessionRepo)
	chatService := chat.NewService(
		sessionRepo,
		messageRepo,
		providerRegistry,
		authorizer,
		txManager,
		cfg.DefaultModel,
		logger,
	)
	profileService := profile.NewService(profileRepo, logger)

	// Create handlers
	chatHandler := handler.NewChatHandler(chatService, logger)
	sessionHandler := handler.NewSessionHandler(chatService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Chat route
	mux.HandleFunc("POST /chat", chatHandler.SubmitMessage)

	// Session routes
	mux.HandleFunc("GET /sessions", sessionHandler.ListSessions)
	mux.HandleFunc("GET /sessions/{id}", sessionHandler.ListMessages)
	mux.HandleFunc("DELETE /sessions/{id}", sessionHandler.DeleteSession)

	// Profile routes
	mux.HandleFunc("GET /profile", profileHandler.GetProfile)
	mux.HandleFunc("PUT /profile", profileHandler.UpdateProfile)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(jwtVerifier)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     root,
		ReadTimeout: 15 * time.Second,
		// Write timeout disabled: a chat turn holds the request open for
		// the full model latency, which can run multiple seconds.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
