// Package web embeds the HTML templates for serving from the Go binary.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// Templates parses the embedded templates. Panics at startup if the
// embedded files are malformed, which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}
