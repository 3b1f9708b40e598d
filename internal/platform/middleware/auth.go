// Copyright (c) 2026 Clipstream. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/constants"
	"github.com/clipstream/clipstream/internal/platform/ctxutil"
	"github.com/clipstream/clipstream/internal/platform/dberr"
	"github.com/clipstream/clipstream/internal/platform/respond"
	"github.com/clipstream/clipstream/internal/platform/sec"
)

// # Authentication

// TokenVerifier verifies a bearer token string and returns its claims.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.AuthClaims, error)
}

// AccountLoader resolves a verified token's subject into a live account
// record. Returning an error means the account no longer exists and the
// token must be treated as invalid.
type AccountLoader interface {
	FindAuthUser(ctx context.Context, userID string) (*sec.AuthUser, error)
}

// Authenticate resolves the caller's identity when a token is present.
//
// The token is read from the auth cookie first, then from the
// Authorization header (Bearer scheme). Requests without a token, or with
// an invalid one, proceed anonymously; route-level enforcement is the job
// of [RequireAuth].
func Authenticate(verifier TokenVerifier, loader AccountLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(tokenString)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			account, err := loader.FindAuthUser(r.Context(), claims.UserID)
			if err != nil {
				// Token is valid but the account is gone (deleted user).
				if dberr.IsNotFound(err) {
					next.ServeHTTP(w, r)
					return
				}
				// A lookup failure is an infrastructure problem, not a
				// credential one.
				respond.Error(w, r, err)
				return
			}

			ctx := ctxutil.WithClaims(r.Context(), claims)
			ctx = ctxutil.WithAuthUser(ctx, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that did not authenticate.
//
// It must be mounted after [Authenticate] in the chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.GetAuthUser(r.Context()) == nil {
			respond.Error(w, r, apperr.Unauthenticated("Authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken pulls the bearer token from the request.
//
// Cookie takes precedence over the Authorization header so that browser
// sessions win over stale programmatic credentials.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}

	return ""
}
