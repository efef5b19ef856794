package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mkarpov/flashcards/internal/middleware"
	"github.com/mkarpov/flashcards/internal/session"
	"go.uber.org/zap"
)

// NewRouter constructs the HTTP handler serving the flashcards application.
//
// Middleware chain (applied in order):
//  1. WithRequestLogging(logger) — logs each request with its request ID
//  2. WithCurrentUser           — resolves the session cookie into a
//     request-scoped user record; anonymous requests pass through
//
// Routes:
//
//	GET  /                    → main page
//	GET  /signup              → signup form
//	POST /signup              → create account, log in, redirect home
//	GET  /login               → login form
//	POST /login               → verify credentials, log in, redirect home
//	GET  /logout              → clear session, redirect home
//	GET  /user                → dashboard (login required)
//	GET  /user/language/add   → add-language form (login required)
//	POST /user/language/add   → attach language (login required)
//	GET  /user/{language}     → language page (login required)
//	GET  /user/{language}/add → reserved, 501
//	POST /user/{language}/add → reserved, 501
//	GET  /user/{language}/{word} → reserved, 501
func NewRouter(
	pages *PageHandler,
	auth *AuthHandler,
	user *UserHandler,
	sessions *session.Manager,
	users session.UserResolver,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Resolve the session cookie once per request
	r.Use(middleware.WithCurrentUser(sessions, users))

	r.Get("/", pages.Main)

	r.Get("/signup", auth.SignupForm)
	r.Post("/signup", auth.Signup)
	r.Get("/login", auth.LoginForm)
	r.Post("/login", auth.Login)
	r.Get("/logout", auth.Logout)

	r.Route("/user", func(r chi.Router) {
		r.Get("/", user.Dashboard)
		r.Get("/language/add", user.AddLanguageForm)
		r.Post("/language/add", user.AddLanguage)
		r.Get("/{language}", user.LanguagePage)
		r.Get("/{language}/add", user.NotYetSupported)
		r.Post("/{language}/add", user.NotYetSupported)
		r.Get("/{language}/{word}", user.NotYetSupported)
	})

	return r
}
