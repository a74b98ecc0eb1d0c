package rest

import (
	_ "embed"
	"net/http"
)

//go:embed static/index.html
var indexHTML []byte

// Serve the single page UI
// (GET /)
func (a *Adapter) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
