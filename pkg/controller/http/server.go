package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/herald-bot/herald/pkg/controller/gateway"
	"github.com/herald-bot/herald/pkg/domain/interfaces"
)

// DefaultWebhookPath is where GitHub deliveries are accepted unless
// configured otherwise
const DefaultWebhookPath = "/github/webhook"

// config holds internal HTTP server configuration
type config struct {
	addr          string
	webhookPath   string
	webhookSecret string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithWebhookPath sets the webhook endpoint path
func WithWebhookPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.webhookPath = path
		}
	}
}

// WithWebhookSecret sets the shared secret for signature verification
func WithWebhookSecret(secret string) Option {
	return func(c *config) {
		c.webhookSecret = secret
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server. The hub may be nil when no gateway
// endpoint should be exposed.
func NewServer(
	ctx context.Context,
	webhookUC interfaces.WebhookUseCase,
	hub *gateway.Hub,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr:        "localhost:8080",
		webhookPath: DefaultWebhookPath,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Webhook endpoint
	webhookHandler := NewWebhookHandler(cfg.webhookSecret, webhookUC)
	router.Post(cfg.webhookPath, webhookHandler.Handle)

	// Platform adapter gateway
	if hub != nil {
		router.Get("/gateway", hub.HandleUpgrade)
	}

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
