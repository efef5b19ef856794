package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mkarpov/flashcards/internal/models"
	"github.com/mkarpov/flashcards/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFunc func(ctx context.Context, username string) (models.User, error)

func (f resolverFunc) FindUser(ctx context.Context, username string) (models.User, error) {
	return f(ctx, username)
}

func knownUser(username string) resolverFunc {
	return func(ctx context.Context, name string) (models.User, error) {
		if name == username {
			return models.User{Username: name, PasswordHash: "hashed"}, nil
		}
		return models.User{}, repository.ErrNotFound
	}
}

// loginCookie runs Login and returns the cookie it set.
func loginCookie(t *testing.T, m *Manager, username string) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Login(rec, username))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestLoginThenCurrentUser(t *testing.T) {
	m := NewManager("secret", time.Hour)
	cookie := loginCookie(t, m, "alice")

	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	user, ok := m.CurrentUser(req, knownUser("alice"))
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)
}

func TestCurrentUser_NoCookie(t *testing.T) {
	m := NewManager("secret", time.Hour)
	req := httptest.NewRequest("GET", "/", nil)

	_, ok := m.CurrentUser(req, knownUser("alice"))
	assert.False(t, ok)
}

func TestCurrentUser_TamperedToken(t *testing.T) {
	m := NewManager("secret", time.Hour)
	cookie := loginCookie(t, m, "alice")

	// Flip a character in the signature segment.
	parts := strings.Split(cookie.Value, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	cookie.Value = parts[0] + "." + parts[1] + "." + string(sig)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	_, ok := m.CurrentUser(req, knownUser("alice"))
	assert.False(t, ok)
}

func TestCurrentUser_WrongSecret(t *testing.T) {
	issued := NewManager("secret", time.Hour)
	cookie := loginCookie(t, issued, "alice")

	verifier := NewManager("other-secret", time.Hour)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	_, ok := verifier.CurrentUser(req, knownUser("alice"))
	assert.False(t, ok)
}

func TestCurrentUser_ExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)
	cookie := loginCookie(t, m, "alice")

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	_, ok := m.CurrentUser(req, knownUser("alice"))
	assert.False(t, ok)
}

func TestCurrentUser_StaleUsernameIsAnonymous(t *testing.T) {
	m := NewManager("secret", time.Hour)
	cookie := loginCookie(t, m, "deleted-user")

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)

	// The resolver no longer knows the user; the session must degrade to
	// anonymous, not error.
	_, ok := m.CurrentUser(req, knownUser("alice"))
	assert.False(t, ok)
}

func TestLogout_Idempotent(t *testing.T) {
	m := NewManager("secret", time.Hour)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		m.Logout(rec)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	}
}
