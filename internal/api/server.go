package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/ziransort/internal/config"
	"github.com/dgallion1/ziransort/internal/natcmp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for ziransort.
type Server struct {
	router   chi.Router
	collator natcmp.Collator
	defaults natcmp.Options
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server. defaults apply to
// requests that leave a policy unset.
func NewServer(collator natcmp.Collator, defaults natcmp.Options, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		collator: collator,
		defaults: defaults,
		log:      log,
		cfg:      cfg,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/compare", s.handleCompare)
		r.Post("/api/sort", s.handleSort)
		r.Post("/api/tokenize", s.handleTokenize)
		r.Post("/api/outline", s.handleOutline)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// comparator resolves request policy names against the server defaults.
func (s *Server) comparator(numberPolicy, chinesePolicy string, reverse bool) (*natcmp.Comparator, error) {
	opts, err := natcmp.ParseOptions(s.defaults, numberPolicy, chinesePolicy)
	if err != nil {
		return nil, err
	}
	c := natcmp.New(opts, s.collator)
	if reverse {
		c = c.Reverse()
	}
	return c, nil
}
