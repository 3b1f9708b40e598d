// Copyright (c) 2026 Clipstream. All rights reserved.

// Package request provides helpers for extracting and decoding inbound
// HTTP request data (JSON bodies, URL parameters, authenticated identity).
package request

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clipstream/clipstream/internal/platform/apperr"
	"github.com/clipstream/clipstream/internal/platform/ctxutil"
	"github.com/clipstream/clipstream/internal/platform/sec"
	"github.com/clipstream/clipstream/internal/platform/validate"
)

// DecodeJSON parses the request body into dst.
//
// Unknown fields are tolerated; malformed JSON yields a validation error so
// that clients see a 400 rather than a 500.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param returns the named chi URL parameter.
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// ID returns the "id" URL parameter.
func ID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// CurrentUser returns the authenticated account attached to the request
// context, or nil for anonymous requests.
func CurrentUser(r *http.Request) *sec.AuthUser {
	return ctxutil.GetAuthUser(r.Context())
}

// RequiredUser returns the authenticated account or an UNAUTHENTICATED error.
//
// Handlers mounted behind the mandatory auth middleware normally never see
// the error path; it guards against miswired routes.
func RequiredUser(r *http.Request) (*sec.AuthUser, error) {
	user := ctxutil.GetAuthUser(r.Context())
	if user == nil {
		return nil, apperr.Unauthenticated("Authentication required")
	}
	return user, nil
}

// RequiredUserID returns the authenticated account's ID or an
// UNAUTHENTICATED error.
func RequiredUserID(r *http.Request) (string, error) {
	user, err := RequiredUser(r)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
