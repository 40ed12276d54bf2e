// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for both surfaces of
// the application: the admin editor pages and the public proposal pages.
// Public pages render to bytes so the page cache can store the result.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"proposalpress/internal/middleware"
	"proposalpress/internal/models"
	"proposalpress/internal/session"
)

//go:embed templates/admin/*.html templates/public/*.html
var templateFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "dashboard", "editor")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and editor requests
	Data      map[string]any // Page-specific data
	Error     string         // One-time error message shown above forms
}

// PublicData is the payload for public proposal templates.
type PublicData struct {
	Slug     string
	Doc      *models.ProposalDocument
	Theme    models.Theme
	Comments []models.Comment
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

// Renderer handles template parsing and execution.
type Renderer struct {
	admin  map[string]*template.Template
	public map[string]*template.Template
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Admin page templates are paired with the base layout;
// public templates stand alone, one per proposal template variant plus
// the landing page.
func New() (*Renderer, error) {
	r := &Renderer{
		admin:  make(map[string]*template.Template),
		public: make(map[string]*template.Template),
	}

	funcs := template.FuncMap{
		// withYear substitutes the {year} token used by footer copyright
		// lines with the current year.
		"withYear": func(s string) string {
			return strings.ReplaceAll(s, "{year}", strconv.Itoa(time.Now().Year()))
		},
		// icon maps an icon name to its inline SVG, falling back to the
		// default icon for unknown names.
		"icon": iconSVG,
	}

	adminEntries, err := templateFS.ReadDir("templates/admin")
	if err != nil {
		return nil, fmt.Errorf("read admin templates: %w", err)
	}
	for _, e := range adminEntries {
		name := e.Name()
		if name == "base.html" {
			continue
		}
		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error
		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(funcs).ParseFS(
				templateFS, "templates/admin/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(funcs).ParseFS(
				templateFS, "templates/admin/base.html", "templates/admin/"+name,
			)
		}
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}
		r.admin[tmplName] = tmpl
	}

	publicEntries, err := templateFS.ReadDir("templates/public")
	if err != nil {
		return nil, fmt.Errorf("read public templates: %w", err)
	}
	for _, e := range publicEntries {
		name := e.Name()
		tmpl, parseErr := template.New(name).Funcs(funcs).ParseFS(
			templateFS, "templates/public/"+name,
		)
		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}
		r.public[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Page renders a full admin page into the response.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}
	data.CSRFToken = middleware.GetCSRFToken(r)
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}
	if err := tmpl.ExecuteTemplate(w, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Proposal renders a proposal document with its chosen template variant
// and returns the HTML. The variant comes from the document itself;
// unknown values fall back to the classic template.
func (rn *Renderer) Proposal(data *PublicData) ([]byte, error) {
	variant := string(data.Doc.EffectiveTemplate())
	tmpl, ok := rn.public[variant]
	if !ok {
		variant = string(models.TemplateClassic)
		tmpl = rn.public[variant]
	}
	if data.Theme.Primary == "" {
		data.Theme = data.Doc.EffectiveTheme()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, variant+".html", data); err != nil {
		return nil, fmt.Errorf("render proposal %q: %w", data.Slug, err)
	}
	return buf.Bytes(), nil
}

// Landing renders the marketing landing page for a proposal and returns
// the HTML.
func (rn *Renderer) Landing(data *PublicData) ([]byte, error) {
	tmpl, ok := rn.public["landing"]
	if !ok {
		return nil, fmt.Errorf("landing template missing")
	}
	if data.Theme.Primary == "" {
		data.Theme = data.Doc.EffectiveTheme()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "landing.html", data); err != nil {
		return nil, fmt.Errorf("render landing %q: %w", data.Slug, err)
	}
	return buf.Bytes(), nil
}
