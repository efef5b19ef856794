package http

import (
	"net/http"

	"github.com/mkarpov/flashcards/internal/middleware"
	"github.com/mkarpov/flashcards/internal/view"
)

// notices maps the notice query parameter to the banner shown on the main
// page. The session carries only the username, so one-off notices travel
// in the redirect URL instead.
var notices = map[string]string{
	"unauthorized": "You must be logged in to view that page.",
}

// PageHandler serves the main page.
type PageHandler struct {
	// View renders the HTML pages.
	View *view.View
}

// Main renders the landing page with the current username, or the
// anonymous placeholder when no one is logged in.
func (h *PageHandler) Main(w http.ResponseWriter, r *http.Request) {
	var data view.Data
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		data.Username = user.Username
	}
	if msg, ok := notices[r.URL.Query().Get("notice")]; ok {
		data.Notice = msg
	}
	h.View.Render(w, http.StatusOK, "main.html", data)
}
