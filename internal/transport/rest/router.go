package rest

import (
	"log/slog"
	"net/http"

	"github.com/avramenko-dev/inventory-backend/internal/config"
	"github.com/avramenko-dev/inventory-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter needs to assemble the HTTP surface.
type RouterDeps struct {
	Log     *slog.Logger
	CORS    config.CORSConfig
	Items   *ItemHandler
	Health  *HealthHandler
	Auth    middleware.Middleware
	Limiter middleware.Middleware // nil disables rate limiting
}

// NewRouter builds the HTTP handler tree. Health probes and the root banner
// stay outside the auth boundary; every /items route requires a verified
// bearer token before any handler code runs.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", deps.Health.Root)
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)

	protected := http.NewServeMux()
	protected.HandleFunc("POST /items", deps.Items.Create)
	protected.HandleFunc("GET /items", deps.Items.List)
	protected.HandleFunc("PUT /items/{id}", deps.Items.Update)
	protected.HandleFunc("DELETE /items/{id}", deps.Items.Delete)

	mux.Handle("/items", deps.Auth(protected))
	mux.Handle("/items/", deps.Auth(protected))

	base := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	}
	if deps.Limiter != nil {
		base = append(base, deps.Limiter)
	}

	return middleware.Chain(base...)(mux)
}
