// Package web serves the self-contained form client. The page is a plain
// consumer of the prestart API: it fetches the schema once, renders every
// control from the schema document, and never hardcodes field names or
// enum values.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed static/form.html
var formHTML []byte

// ServeForm delivers the embedded form page.
func ServeForm(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(formHTML)
}
