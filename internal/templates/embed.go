package templates

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed files/*.tmpl
var filesFS embed.FS

var funcs = template.FuncMap{
	"guard": includeGuard,
}

// parsed holds every template, keyed by file name without the .tmpl suffix.
var parsed = template.Must(template.New("gojo").Funcs(funcs).ParseFS(filesFS, "files/*.tmpl"))

// includeGuard turns a header suffix into a macro-safe token: "h++" -> "HPP".
func includeGuard(ext string) string {
	return strings.ToUpper(strings.ReplaceAll(ext, "+", "P"))
}
