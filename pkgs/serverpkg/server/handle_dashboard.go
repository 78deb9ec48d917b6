package server

import (
	"net/http"

	"github.com/WangWilly/birdboard/pkgs/metrics"
)

// handleDashboard serves the main dashboard page. The aggregation re-fetches
// everything on every view; nothing is cached between requests.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	metrics.PageViews.Inc()

	vm, err := s.aggregator.Perform(r.Context())
	if err != nil {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := s.templates.ExecuteTemplate(w, "index.html", vm); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
	}
}
