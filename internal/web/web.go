// Package web carrega as páginas HTML embutidas no binário.
package web

import (
	"embed"
	"html/template"

	"github.com/BruksfildServices01/consultorio/internal/timezone"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates devolve todas as views; cada página é um {{define "<view>"}}.
func Templates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{
			"dataHora": timezone.Format,
		}).
		ParseFS(templatesFS, "templates/*.html")
}
