// Package views renders the server-side HTML pages from templates embedded
// in the binary. Handlers supply a title and a data payload to a named
// template; no logic beyond data shaping happens here.
package views

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.gohtml
var fs embed.FS

var pages = template.Must(template.ParseFS(fs, "templates/*.gohtml"))

// Page carries the fields shared by every view: the page title and the
// flags the navigation bar uses to highlight the active section.
type Page struct {
	Title      string
	IsHome     bool
	IsUsers    bool
	IsGroups   bool
	IsAddUser  bool
	IsAddGroup bool
}

// Render executes the named template with data and writes the result. A
// template failure after headers are sent cannot be recovered, so it is
// logged and the response left as-is.
func Render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		logger.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

// ErrorData is the view model of the error page.
type ErrorData struct {
	Page
	Error string
}

// RenderError renders the generic error view with a human-readable message.
func RenderError(w http.ResponseWriter, r *http.Request, msg string) {
	Render(w, r, "error", ErrorData{
		Page:  Page{Title: "Error"},
		Error: msg,
	})
}
