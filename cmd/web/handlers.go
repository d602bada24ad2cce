package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/aarnio/casedesk/internal/contexthelpers"
	"github.com/aarnio/casedesk/internal/errors"
	"github.com/aarnio/casedesk/ui"
)

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to a directory inside ui/templates/pages. It has to include a template named "main".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	files := []string{
		"templates/base.gohtml",
	}

	pageTemplateFiles, err := fs.Glob(ui.Files, fmt.Sprintf("templates/pages/%s/*.gohtml", pageName))
	if err != nil {
		return nil, errors.Wrap(err, "glob page template files", slog.String("page", pageName))
	}
	files = append(files, pageTemplateFiles...)

	// The FuncMap needs placeholders before parsing. They are overridden with
	// request-scoped implementations in executeTemplate.
	return template.New(pageName).Funcs(template.FuncMap{
		"csrf": func() template.HTML {
			panic("not implemented")
		},
		"csrfToken": func() string {
			panic("not implemented")
		},
	}).ParseFS(ui.Files, files...)
}

// executeTemplate renders templateName from the given page with request-scoped
// CSRF template functions and writes it with the given status.
func (app *application) executeTemplate(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	pageName string,
	templateName string,
	data any,
) {
	t, err := app.pageTemplate(pageName)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", pageName)))
		return
	}

	csrfToken := contexthelpers.CSRFToken(r.Context())
	csrfField := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", csrfToken)
	t.Funcs(template.FuncMap{
		"csrf": func() template.HTML {
			return template.HTML(csrfField) //nolint:gosec // the token is generated by nosurf, not the user.
		},
		"csrfToken": func() string {
			return csrfToken
		},
	})

	buf := new(bytes.Buffer)
	if err = t.ExecuteTemplate(buf, templateName, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", templateName)))
		return
	}

	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}

// render writes the full page for the given page name.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, pageName string, data any) {
	app.executeTemplate(w, r, status, pageName, "base", data)
}
