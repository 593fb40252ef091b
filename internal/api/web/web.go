// Package web holds the HTML shell served at the site root.
package web

import (
	"embed"
	"html/template"
)

// PageTemplate is the name of the single-page shell template.
const PageTemplate = "page.html"

//go:embed templates/*.html
var templates embed.FS

// Templates parses the embedded templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templates, "templates/*.html"))
}
