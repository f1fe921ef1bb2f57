// Package web holds the server-rendered views.
package web

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templateFS embed.FS

var richTextPolicy = bluemonday.UGCPolicy()

// Templates parses every view. Templates are addressed by file name, e.g.
// "home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"richText": RichText,
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
	}
}

// RichText sanitises editor HTML for output.
func RichText(s string) template.HTML {
	return template.HTML(richTextPolicy.Sanitize(s))
}
