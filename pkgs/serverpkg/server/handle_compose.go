package server

import (
	"net/http"
	"strings"
)

// handleCompose submits the composed post, then re-runs the aggregation so
// the refreshed dashboard includes it. A submit failure renders the same
// error view as a failed page view.
func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(r.PostFormValue("text"))
	if text == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	vm, err := s.aggregator.SubmitAndRefresh(r.Context(), text)
	if err != nil {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(w, "index.html", vm); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
	}
}
