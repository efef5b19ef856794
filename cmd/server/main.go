// Package main initializes and starts the flashcards HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, the session manager, and the route handlers.
package main

import (
	"cmp"
	"fmt"
	stdlog "log"

	nethttp "net/http"

	"github.com/mkarpov/flashcards/internal/config"
	"github.com/mkarpov/flashcards/internal/db"
	"github.com/mkarpov/flashcards/internal/logger"
	"github.com/mkarpov/flashcards/internal/repository"
	"github.com/mkarpov/flashcards/internal/server/handler/http"
	"github.com/mkarpov/flashcards/internal/service"
	"github.com/mkarpov/flashcards/internal/session"
	"github.com/mkarpov/flashcards/internal/view"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, file, and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init("Info"); err != nil {
		stdlog.Fatalf("failed to init logger: %v", err)
	}
	zapLogger := log.Log
	defer func() { _ = zapLogger.Sync() }()

	if options.SecretKey == "dev-secret-change-me" {
		zapLogger.Warn("running with the development session secret; set SECRET_KEY in production")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users, languages, and words.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	langRepo := repository.NewPostgresLanguageRepository(postgresDB)
	wordRepo := repository.NewPostgresWordRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo)
	vocabService := service.NewVocabularyService(langRepo, wordRepo)

	// The session manager signs the cookie identifying the current user.
	sessions := session.NewManager(options.SecretKey, options.SessionTTL)

	// Parse the embedded HTML templates.
	views, err := view.New(zapLogger)
	if err != nil {
		zapLogger.Fatal("cannot parse templates", zap.Error(err))
	}

	// Create the HTTP handlers for the page, auth, and user routes.
	pageHandler := &http.PageHandler{View: views}
	authHandler := &http.AuthHandler{Auth: authService, Sessions: sessions, View: views, Log: zapLogger}
	userHandler := &http.UserHandler{Vocab: vocabService, View: views, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(pageHandler, authHandler, userHandler, sessions, userRepo, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    options.Address,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
