// Package middleware provides HTTP middlewares for session resolution and
// request logging.
package middleware

import (
	"context"
	"net/http"

	"github.com/mkarpov/flashcards/internal/models"
	"github.com/mkarpov/flashcards/internal/session"
)

type ctxKey string

const userKey ctxKey = "user"

// WithCurrentUser resolves the session cookie once per request and attaches
// the resulting user record to the request context. Anonymous requests
// (no cookie, invalid token, stale username) pass through with no user
// attached; handlers decide per route whether that matters.
func WithCurrentUser(sessions *session.Manager, users session.UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, ok := sessions.CurrentUser(r, users); ok {
				r = r.WithContext(WithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser returns a context carrying the given user record.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the current user from the request context.
// ok is false for anonymous requests.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}
