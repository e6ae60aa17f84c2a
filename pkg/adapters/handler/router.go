package handler

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wadjakorntonsri/stacc/pkg/clientip"
	"github.com/wadjakorntonsri/stacc/pkg/config"
	"github.com/wadjakorntonsri/stacc/pkg/ports"
)

// Services bundles what the router dispatches to.
type Services struct {
	Posts    ports.PostService
	Visitors ports.VisitorService
	Media    ports.MediaService
	Chicago  ports.ChicagoService
	Tracker  ports.Tracker
	Store    Pinger
}

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, s Services) http.Handler {
	resolver := clientip.Resolver{TrustProxyHeaders: cfg.TrustProxyHeaders}
	h := NewHTTPHandler(s, resolver)
	mw := NewMiddleware(cfg.AdminJWTSecret, resolver)

	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, instrument(pattern, fn))
	}

	// Public Routes
	handle("GET /background", h.Background)
	handle("GET /story", h.Story)
	handle("GET /chiraq", h.Chicago)
	handle("GET /chiraq/summary", h.ChicagoSummary)
	handle("GET /blog/posts", h.ListPosts)
	handle("GET /blog/post/{id}", h.GetPost)
	handle("POST /blog/post/{id}/view", h.RecordPostView)

	// Admin Routes, only when a signing secret is configured
	if cfg.AdminEnabled() {
		adminMux := http.NewServeMux()
		adminMux.Handle("GET /admin/visitors", instrument("GET /admin/visitors", h.ListVisitors))
		adminMux.Handle("GET /admin/visitors/{ip}", instrument("GET /admin/visitors/{ip}", h.GetVisitor))
		adminMux.HandleFunc("/", NotFound)
		mux.Handle("/admin/", mw.AuthMiddleware(adminMux))
	}

	mux.HandleFunc("/", NotFound)

	var limited http.Handler = mux
	if cfg.RateLimitRequests > 0 {
		limited = httprate.Limit(
			cfg.RateLimitRequests,
			cfg.RateLimitWindow,
			httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
				return resolver.Resolve(r), nil
			}),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, http.StatusTooManyRequests, "too many requests")
			}),
		)(limited)
	}

	// Operations are not rate limited.
	root := http.NewServeMux()
	root.HandleFunc("GET /healthz", Healthz)
	root.HandleFunc("GET /readyz", Readyz(s.Store))
	root.Handle("GET /metrics", promhttp.Handler())
	root.Handle("/", limited)

	handler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})(root)

	return mw.RequestLogger(Recoverer(handler))
}
