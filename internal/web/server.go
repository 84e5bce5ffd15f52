// Package web serves the interactive inspection page. Each request renders
// the whole page from the view state carried in query parameters, mirroring
// a reactive framework's top-to-bottom re-run model.
package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/edgarlab/secviz/internal/config"
	"github.com/edgarlab/secviz/internal/filing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server renders the inspection UI.
type Server struct {
	router   chi.Router
	loader   *filing.Loader
	sessions *sessionStore
	log      *slog.Logger
	cfg      config.Config
	steps    []filing.ProcessStep
	tmpl     *template.Template
}

// Option configures the server.
type Option func(*Server)

// WithExtraSteps appends caller-supplied pipeline stages after the fixed
// three.
func WithExtraSteps(steps ...filing.ProcessStep) Option {
	return func(s *Server) {
		s.steps = append(s.steps, steps...)
	}
}

// NewServer creates and configures the UI server.
func NewServer(loader *filing.Loader, log *slog.Logger, cfg config.Config, opts ...Option) *Server {
	s := &Server{
		loader:   loader,
		sessions: newSessionStore(cfg.SessionTTL),
		log:      log,
		cfg:      cfg,
		steps:    filing.Steps(),
		tmpl:     pageTemplate(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handlePage)
	r.Post("/session/key", s.handleSessionKey)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleSessionKey stores an API key entered through the sidebar form in the
// in-memory session and returns to the page the form was on.
func (s *Server) handleSessionKey(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	token := sessionToken(w, r)
	if token == "" {
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}
	s.sessions.Put(token, r.FormValue("api_key"))

	returnTo := r.FormValue("return")
	if returnTo == "" || returnTo[0] != '/' {
		returnTo = "/"
	}
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// apiKey resolves the credential for a request: the environment variable
// wins, otherwise the key stored in the session.
func (s *Server) apiKey(r *http.Request) (key string, fromEnv bool) {
	if s.cfg.SecapioAPIKey != "" {
		return s.cfg.SecapioAPIKey, true
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		if k, ok := s.sessions.Get(c.Value); ok {
			return k, false
		}
	}
	return "", false
}
