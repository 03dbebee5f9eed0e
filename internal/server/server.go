package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jordanvega/sentinel/internal/config"
	"github.com/jordanvega/sentinel/internal/database"
	"github.com/jordanvega/sentinel/internal/ratelimit"
	"github.com/jordanvega/sentinel/internal/report"
)

type Server struct {
	cfg            *config.Config
	db             *database.DB
	log            *zap.Logger
	apiLimiter     *ratelimit.Limiter
	contactLimiter *ratelimit.Limiter
	pdf            *report.PDFRenderer
	router         chi.Router
}

func New(cfg *config.Config, db *database.DB, log *zap.Logger) *Server {
	s := &Server{
		cfg: cfg,
		db:  db,
		log: log,
		apiLimiter: ratelimit.New(cfg.RateLimit.API.Window(), cfg.RateLimit.API.Max,
			"Too many requests from this IP, please try again after 15 minutes"),
		contactLimiter: ratelimit.New(cfg.RateLimit.Contact.Window(), cfg.RateLimit.Contact.Max,
			"Security Alert: Excessive contact submissions detected. Please try again later."),
		pdf: report.NewPDFRenderer(cfg.Reports.FontPath),
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.log.Info("starting server", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	if s.cfg.Server.TrustProxy {
		// Behind the reverse proxy the real client address arrives in
		// X-Forwarded-For; the limiter must key on it, not on the proxy.
		r.Use(chimiddleware.RealIP)
	}
	r.Use(s.requestID)
	r.Use(s.requestLogging)
	r.Use(s.recovery)
	r.Use(securityHeaders)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit(s.apiLimiter))

			r.Get("/projects", s.handleListProjects)
			r.Get("/reports", s.handleListReports)
			r.Get("/reports/{id}", s.handleGetReport)
			r.Get("/reports/{id}/download", s.handleDownloadReport)

			// Admin-only reads
			r.Group(func(r chi.Router) {
				r.Use(s.adminOnly)
				r.Get("/contacts", s.handleListContacts)
				r.Get("/stats", s.handleStats)
			})
		})

		// The contact form has its own, stricter window.
		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit(s.contactLimiter))
			r.Post("/contact", s.handleSubmitContact)
		})
	})

	if s.cfg.Web.Dist != "" {
		r.NotFound(s.spaHandler())
	}

	return r
}

// spaHandler serves the built frontend, falling back to index.html for
// client-side routes.
func (s *Server) spaHandler() http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(s.cfg.Web.Dist))
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.cfg.Web.Dist, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.cfg.Web.Dist, "index.html"))
	}
}
