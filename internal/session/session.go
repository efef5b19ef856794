// Package session tracks the current user across requests with a signed,
// client-held cookie. The cookie carries a single field, the username, as
// the subject of an HMAC-SHA256 JWT; no other session state exists.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mkarpov/flashcards/internal/models"
)

// CookieName is the name of the session cookie.
const CookieName = "flashcards_session"

// tokenIssuer is the "iss" claim embedded in every issued token. Tokens
// whose issuer does not match are rejected during parsing.
const tokenIssuer = "flashcards"

// UserResolver resolves a stored username into a full user record. It is
// satisfied by the user repository.
type UserResolver interface {
	FindUser(ctx context.Context, username string) (models.User, error)
}

// Manager issues and verifies session cookies. It is safe for concurrent
// use; all state is read-only after construction.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager that signs cookies with the given secret
// and expires them after ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Login records the username as current by setting a signed session cookie
// on the response.
func (m *Manager) Login(w http.ResponseWriter, username string) error {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl.Seconds()),
	})
	return nil
}

// Logout clears the session cookie. Calling it without a prior login is a
// no-op for the client.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// CurrentUser resolves the request's session cookie into a user record.
// A missing cookie, a bad signature, an expired token, and a username that
// no longer resolves all yield an anonymous result (ok == false); the
// request proceeds unauthenticated rather than failing.
func (m *Manager) CurrentUser(r *http.Request, users UserResolver) (models.User, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return models.User{}, false
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.User{}, false
	}

	username, err := token.Claims.GetSubject()
	if err != nil || username == "" {
		return models.User{}, false
	}

	user, err := users.FindUser(r.Context(), username)
	if err != nil {
		return models.User{}, false
	}
	return user, true
}
