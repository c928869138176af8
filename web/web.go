// Package web embeds the HTML templates and static assets served by the
// form front end.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	TemplateLanding = "landing.html"
	TemplateForm    = "predict.html"
	TemplateResult  = "result.html"
)

// Templates parses every embedded page. Names are the file base names.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"percent": func(v *float64) string {
			if v == nil {
				return ""
			}
			return formatPercent(*v)
		},
	}).ParseFS(templatesFS, "templates/*.html")
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
