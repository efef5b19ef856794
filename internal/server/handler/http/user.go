package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mkarpov/flashcards/internal/forms"
	"github.com/mkarpov/flashcards/internal/middleware"
	"github.com/mkarpov/flashcards/internal/models"
	"github.com/mkarpov/flashcards/internal/service"
	"github.com/mkarpov/flashcards/internal/view"
	"go.uber.org/zap"
)

// VocabularyService defines the language and word operations required by
// the per-user HTTP handlers.
type VocabularyService interface {
	// AddLanguage attaches a code to the user; service.ErrLanguageExists
	// on a conflict.
	AddLanguage(ctx context.Context, username, code string) (models.Language, error)
	// Language resolves one of the user's languages;
	// service.ErrLanguageNotFound if the user has not added it.
	Language(ctx context.Context, username, code string) (models.Language, error)
	// Languages lists all languages the user has added.
	Languages(ctx context.Context, username string) ([]models.Language, error)
	// Words lists the words recorded in a language.
	Words(ctx context.Context, languageID int64) ([]models.Word, error)
}

// UserHandler handles the pages behind a login: the dashboard, language
// pages, and the add-language form.
type UserHandler struct {
	// Vocab performs the underlying vocabulary operations.
	Vocab VocabularyService
	// View renders the HTML pages.
	View *view.View
	// Log is the structured logger for unexpected failures.
	Log *zap.Logger
}

// redirectAnonymous sends a request without a logged-in user back to the
// main page with an unauthorized notice.
func redirectAnonymous(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/?notice=unauthorized", http.StatusFound)
}

// Dashboard renders the logged-in user's language listing.
func (h *UserHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		redirectAnonymous(w, r)
		return
	}

	langs, err := h.Vocab.Languages(r.Context(), user.Username)
	if err != nil {
		h.Log.Error("failed to list languages", zap.String("username", user.Username), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	h.View.Render(w, http.StatusOK, "dashboard.html", view.Data{
		Username:  user.Username,
		Languages: langs,
	})
}

// LanguagePage renders one of the user's languages and its words. A code
// the user has not added is a 404.
func (h *UserHandler) LanguagePage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		redirectAnonymous(w, r)
		return
	}

	code := chi.URLParam(r, "language")
	lang, err := h.Vocab.Language(r.Context(), user.Username, code)
	if err != nil {
		if !errors.Is(err, service.ErrLanguageNotFound) {
			h.Log.Error("failed to get language", zap.String("username", user.Username), zap.String("code", code), zap.Error(err))
		}
		http.NotFound(w, r)
		return
	}

	words, err := h.Vocab.Words(r.Context(), lang.ID)
	if err != nil {
		h.Log.Error("failed to list words", zap.String("username", user.Username), zap.String("code", code), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	h.View.Render(w, http.StatusOK, "language.html", view.Data{
		Username: user.Username,
		Language: lang,
		Words:    words,
	})
}

// AddLanguageForm renders the empty add-language form.
func (h *UserHandler) AddLanguageForm(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		redirectAnonymous(w, r)
		return
	}
	h.View.Render(w, http.StatusOK, "add_language.html", view.Data{Username: user.Username})
}

// AddLanguage processes a submitted add-language form. A duplicate code
// re-renders the form with a conflict message; any other store failure is
// collapsed to a 404 and logged.
func (h *UserHandler) AddLanguage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		redirectAnonymous(w, r)
		return
	}

	form, fieldErrors := forms.ParseLanguageForm(r)
	if fieldErrors != nil {
		h.View.Render(w, http.StatusOK, "add_language.html", view.Data{
			Username: user.Username,
			Errors:   fieldErrors,
			Form:     map[string]string{"language": form.Language},
		})
		return
	}

	if _, err := h.Vocab.AddLanguage(r.Context(), user.Username, form.Language); err != nil {
		if errors.Is(err, service.ErrLanguageExists) {
			h.View.Render(w, http.StatusOK, "add_language.html", view.Data{
				Username: user.Username,
				Errors:   map[string]string{"language": "language already exists"},
				Form:     map[string]string{"language": form.Language},
			})
			return
		}
		h.Log.Error("failed to add language", zap.String("username", user.Username), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/user", http.StatusFound)
}

// NotYetSupported serves the reserved add-word and word-page routes. Their
// product behavior is undecided, so they answer 501 instead of guessing.
func (h *UserHandler) NotYetSupported(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		redirectAnonymous(w, r)
		return
	}
	h.View.Render(w, http.StatusNotImplemented, "not_supported.html", view.Data{})
}
