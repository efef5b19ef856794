// Package http provides the HTTP handlers for the flashcards web
// application: signup, login, logout, the main page, and the per-user
// vocabulary pages.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/mkarpov/flashcards/internal/forms"
	"github.com/mkarpov/flashcards/internal/models"
	"github.com/mkarpov/flashcards/internal/service"
	"github.com/mkarpov/flashcards/internal/view"
	"go.uber.org/zap"
)

// AuthService defines the interface for registration and credential
// verification required by the HTTP handlers.
type AuthService interface {
	// Register creates the account and its default language.
	// Returns service.ErrUsernameTaken on a conflict.
	Register(ctx context.Context, username, password string) (models.User, error)
	// Authenticate verifies the username/password pair.
	// Returns service.ErrInvalidCredentials when either is wrong.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// SessionWriter sets and clears the session cookie on responses.
type SessionWriter interface {
	Login(w http.ResponseWriter, username string) error
	Logout(w http.ResponseWriter)
}

// AuthHandler handles HTTP requests for signup, login, and logout.
type AuthHandler struct {
	// Auth performs the underlying registration and verification.
	Auth AuthService
	// Sessions issues and clears session cookies.
	Sessions SessionWriter
	// View renders the HTML pages.
	View *view.View
	// Log is the structured logger for unexpected failures.
	Log *zap.Logger
}

// SignupForm renders the empty signup form.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.View.Render(w, http.StatusOK, "signup.html", view.Data{})
}

// Signup processes a submitted signup form. A valid form creates the user
// with their default language, logs them in, and redirects home. A taken
// username re-renders the form with a conflict message; any other store
// failure is collapsed to a 404 and logged.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	form, fieldErrors := forms.ParseUserForm(r)
	if fieldErrors != nil {
		h.View.Render(w, http.StatusOK, "signup.html", view.Data{
			Errors: fieldErrors,
			Form:   map[string]string{"username": form.Username},
		})
		return
	}

	if _, err := h.Auth.Register(r.Context(), form.Username, form.Password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.View.Render(w, http.StatusOK, "signup.html", view.Data{
				Errors: map[string]string{"username": "username already taken"},
				Form:   map[string]string{"username": form.Username},
			})
			return
		}
		h.Log.Error("signup failed", zap.String("username", form.Username), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	if err := h.Sessions.Login(w, form.Username); err != nil {
		h.Log.Error("failed to set session", zap.String("username", form.Username), zap.Error(err))
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// LoginForm renders the empty login form.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.View.Render(w, http.StatusOK, "login.html", view.Data{})
}

// Login processes a submitted login form. Wrong credentials re-render the
// form with one unspecific message; whether the username or the password
// was wrong is not revealed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, fieldErrors := forms.ParseUserForm(r)
	if fieldErrors != nil {
		h.View.Render(w, http.StatusOK, "login.html", view.Data{
			Errors: fieldErrors,
			Form:   map[string]string{"username": form.Username},
		})
		return
	}

	user, err := h.Auth.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.View.Render(w, http.StatusOK, "login.html", view.Data{
				Errors: map[string]string{"credentials": "invalid username or password"},
				Form:   map[string]string{"username": form.Username},
			})
			return
		}
		h.Log.Error("login failed", zap.String("username", form.Username), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	if err := h.Sessions.Login(w, user.Username); err != nil {
		h.Log.Error("failed to set session", zap.String("username", user.Username), zap.Error(err))
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout clears the session cookie and redirects home. Logging out while
// already anonymous is harmless.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
