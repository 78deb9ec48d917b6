package server

import (
	"net/http"

	"github.com/WangWilly/birdboard/pkgs/clients/birdclient"
	"github.com/WangWilly/birdboard/pkgs/serverpkg/serverdto"
	log "github.com/sirupsen/logrus"
)

// renderError shows the error page instead of the dashboard. An upstream API
// failure carries its own status code and payload into the view; anything
// else renders as a plain internal error.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	view := serverdto.ErrorView{
		StatusCode: http.StatusInternalServerError,
		Data:       err.Error(),
	}
	responseStatus := http.StatusInternalServerError

	if apiErr, ok := birdclient.AsAPIError(err); ok {
		view.StatusCode = apiErr.StatusCode
		view.Data = string(apiErr.Payload)
		responseStatus = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(responseStatus)
	if err := s.templates.ExecuteTemplate(w, "error.html", view); err != nil {
		log.WithField("caller", "Server.renderError").
			WithError(err).Error("failed to render error template")
	}
}
