package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/mamadou288/shop-api/internal/apisrv/admin"
	"github.com/mamadou288/shop-api/internal/apisrv/response"
	"github.com/mamadou288/shop-api/internal/auth/jwt"
	"github.com/mamadou288/shop-api/log"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultRateLimit      = 120
)

// Config is the configuration for the http server
type Config struct {
	Port           string        `mapstructure:"port"`
	Address        string        `mapstructure:"address"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RateLimit      int           `mapstructure:"rate_limit"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler builds the router: /health is public, /api/admin/analytics requires an admin token.
func (s *Server) Handler(adminServer *admin.Server, ja *jwtauth.JWTAuth) http.Handler {
	timeout := s.c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	limit := s.c.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		log.RequestLogger(slog.Default()),
		middleware.Recoverer,
		middleware.Timeout(timeout),
		cors.Handler(cors.Options{
			AllowOriginFunc: func(_ *http.Request, origin string) bool {
				return isOriginAllowed(origin, s.c.AllowedOrigins)
			},
			AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		httprate.LimitByIP(limit, time.Minute),
	)

	r.NotFound(response.NotFound)
	r.Get("/health", adminServer.Health)

	r.With(jwtauth.Verifier(ja), jwt.AdminOnly).Mount("/api/admin/analytics", adminServer.Routes())

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context, adminServer *admin.Server, ja *jwtauth.JWTAuth) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Handler(adminServer, ja),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "shop-api listening", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}

	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin || allowedOrigin == "*" {
			return true
		}
	}

	return false
}
