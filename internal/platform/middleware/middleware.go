// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package middleware contains the HTTP middleware chain for the API server.

# Pipeline

The standard request pipeline, outermost first:

 1. RequestID: assigns a unique ID for tracing.
 2. StructuredLogger: attaches a request-scoped slog.Logger and logs completion.
 3. Timeout: bounds total request duration.
 4. RateLimit: per-client token bucket.
 5. PanicRecovery: converts panics into 500 responses.
 6. Authenticate: optional identity resolution (see auth.go).

Every stage derives a new [context.Context]; no stage mutates shared
request state.
*/
package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/config"
	"github.com/clipstream/clipstream/internal/platform/constants"
	"github.com/clipstream/clipstream/internal/platform/ctxutil"
	"github.com/clipstream/clipstream/internal/platform/respond"
	"github.com/clipstream/clipstream/pkg/uuid"
)

// # Request Tracing

// RequestID assigns a unique identifier to every inbound request.
//
// An existing X-Request-Id header from a trusted proxy is honored so that
// traces correlate across hops; otherwise a fresh UUIDv7 is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New()
		}

		w.Header().Set(constants.HeaderXRequestID, requestID)
		ctx := ctxutil.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// # Structured Logging

// statusRecorder captures the response status code for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// StructuredLogger attaches a request-scoped logger to the context and emits
// one access log line per request after completion.
func StructuredLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestLogger := base.With(
				slog.String("request_id", ctxutil.GetRequestID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			ctx := ctxutil.WithLogger(r.Context(), requestLogger)
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r.WithContext(ctx))

			requestLogger.InfoContext(ctx, "http_request_completed",
				slog.Int("status", recorder.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_ip", clientIP(r)),
			)
		})
	}
}

// # Request Timeout

// Timeout bounds the total lifetime of a request by cancelling its context.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// # Rate Limiting

// clientLimiter pairs a token bucket with its last-seen timestamp so idle
// entries can be evicted.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP using token buckets.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
}

// NewRateLimiter creates a RateLimiter and starts its background cleanup loop.
//
// The loop runs until ctx is cancelled.
func NewRateLimiter(ctx context.Context, rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go rl.cleanupLoop(ctx)
	return rl
}

// Handler returns the middleware enforcing the rate limit.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			respond.Error(w, r, apperr.RateLimited("Too many requests, slow down"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, ok := rl.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// cleanupLoop periodically evicts buckets for clients that went quiet.
func (rl *RateLimiter) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(constants.RateLimitCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, client := range rl.clients {
				if time.Since(client.lastSeen) > constants.RateLimitClientTTL {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// # Panic Recovery

// PanicRecovery converts handler panics into 500 responses instead of
// crashing the server process.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger := ctxutil.GetLogger(r.Context())
				logger.ErrorContext(r.Context(), "panic_recovered",
					slog.Any("panic", recovered),
					slog.String("request_id", ctxutil.GetRequestID(r.Context())),
				)
				respond.Error(w, r, apperr.Unexpected(nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// # Cross-Origin Resource Sharing

// CORS allows the configured SPA origin to call the API with credentials.
//
// Cookies carry the auth token, so Access-Control-Allow-Credentials must be
// true and the origin cannot be a wildcard.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == cfg.WebOrigin || (cfg.IsDevelopment() && origin != "") {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-Id")
				w.Header().Set("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the originating client address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
