// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/clipstream/clipstream/internal/channel"
	"github.com/clipstream/clipstream/internal/comment"
	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/config"
	"github.com/clipstream/clipstream/internal/platform/constants"
	"github.com/clipstream/clipstream/internal/platform/middleware"
	"github.com/clipstream/clipstream/internal/platform/respond"
	"github.com/clipstream/clipstream/internal/user"
	"github.com/clipstream/clipstream/internal/video"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Health is the /api/health handler: always 200 while the process is
	// alive, dependency states reported in the payload.
	Health http.HandlerFunc

	// User handles registration, login, and profile lookups.
	User *user.Handler

	// Channel handles publishing identities.
	Channel *channel.Handler

	// Video handles the media catalog.
	Video *video.Handler

	// Comment handles annotations on videos.
	Comment *comment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	verifier middleware.TokenVerifier,
	loader middleware.AccountLoader,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	rateLimiter := middleware.NewRateLimiter(ctx,
		constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Timeout(constants.GlobalRequestTimeout))
	r.Use(rateLimiter.Handler)
	r.Use(middleware.PanicRecovery)
	r.Use(middleware.Authenticate(verifier, loader))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/api/health", h.Health)

	// # Application API
	// Channel listings of videos belong to the catalog domain; the route
	// is attached here to keep all /channel paths on one router.
	channelRoutes := h.Channel.Routes()
	channelRoutes.Get("/{id}/videos", h.Video.ChannelVideos)

	r.Mount("/user", h.User.Routes())
	r.Mount("/channel", channelRoutes)
	r.Mount("/video", h.Video.Routes())
	r.Mount("/comment", h.Comment.Routes())

	// Unknown routes still answer in the standard envelope.
	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("route"))
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// ListenAndServe starts accepting connections. It blocks until the server
// stops.
func (server *Server) ListenAndServe() error {
	server.log.Info("http server listening", slog.String("addr", server.httpServer.Addr))
	return server.httpServer.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests within the given timeout.
func (server *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.httpServer.Shutdown(ctx)
}

// Router exposes the underlying mux for tests.
func (server *Server) Router() *chi.Mux {
	return server.router
}
