// Package web provides embedded static assets (CSS, JS) for the admin
// interface and public pages, served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the admin stylesheet
// and the editor script.
//
//go:embed all:static
var StaticFS embed.FS
