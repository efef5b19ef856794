// Package view renders the server-side HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mkarpov/flashcards/internal/models"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var files embed.FS

// Data is the payload handed to every template. Handlers fill in only the
// fields their page uses.
type Data struct {
	// Username of the current user, empty when anonymous.
	Username string
	// Notice is an informational banner ("you must be logged in").
	Notice string
	// Errors maps form field names to validation or conflict messages.
	Errors map[string]string
	// Form echoes submitted values so a re-rendered form keeps its input.
	Form map[string]string
	// Languages backs the dashboard listing.
	Languages []models.Language
	// Language backs the single-language page.
	Language models.Language
	// Words backs the word listing of a language page.
	Words []models.Word
}

// View executes named templates onto HTTP responses.
type View struct {
	tmpl *template.Template
	log  *zap.Logger
}

// New parses the embedded templates and returns a ready View.
func New(log *zap.Logger) (*View, error) {
	tmpl, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &View{tmpl: tmpl, log: log}, nil
}

// Render writes the named template with the given status code. A template
// execution failure after the header is written can only be logged.
func (v *View) Render(w http.ResponseWriter, status int, name string, data Data) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := v.tmpl.ExecuteTemplate(w, name, data); err != nil {
		v.log.Error("failed to render template", zap.String("template", name), zap.Error(err))
	}
}
