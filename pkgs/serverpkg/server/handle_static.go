package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// handleStatic serves static files (CSS, JS, images)
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	staticPath := r.URL.Path[len("/static/"):]
	fullPath := filepath.Join("./static", staticPath)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	if filepath.Ext(staticPath) == ".svg" {
		w.Header().Set("Content-Type", "image/svg+xml")
	}

	http.ServeFile(w, r, fullPath)
}
