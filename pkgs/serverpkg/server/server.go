package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Server renders the dashboard for the single configured account
type Server struct {
	templates  *template.Template
	port       string
	aggregator Aggregator

	httpServer *http.Server
}

// New creates a server instance, parsing the HTML templates up front
func New(aggregator Aggregator, port string) (*Server, error) {
	templates, err := template.New("").
		Funcs(createTemplateFunctions()).
		ParseGlob("./templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		templates:  templates,
		port:       port,
		aggregator: aggregator,
	}
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.Routes(),
	}
	return s, nil
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

////////////////////////////////////////////////////////////////////////////////
// Routing
////////////////////////////////////////////////////////////////////////////////

// Routes configures all HTTP routes. Exposed so tests can drive the handlers
// through httptest without binding a port.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Dashboard routes: the page view and the compose form share the path
	mux.HandleFunc("/", s.handleIndex)

	// Static file routes
	mux.HandleFunc("/static/", s.handleStatic)

	// Operational routes
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", s.handleHealth)

	return s.withRequestLog(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleDashboard(w, r)
	case http.MethodPost:
		s.handleCompose(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

////////////////////////////////////////////////////////////////////////////////
// Request Logging
////////////////////////////////////////////////////////////////////////////////

// withRequestLog tags every request with an id and logs its outcome
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := log.WithFields(log.Fields{
			"request_id": uuid.NewString(),
			"method":     r.Method,
			"path":       r.URL.Path,
		})

		next.ServeHTTP(w, r)
		logger.WithField("elapsed", time.Since(start)).Debugln("request served")
	})
}
