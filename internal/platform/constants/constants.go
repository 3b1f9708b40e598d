// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and cookie configuration.
  - Uploads: Media file size ceilings and accepted content types.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "clipstream-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Generous because video uploads stream through the request body.
	DefaultReadTimeout = 60 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 60 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "clipstream.app"

	// AuthTokenTTL is how long an issued bearer token remains valid.
	AuthTokenTTL = 7 * 24 * time.Hour

	// AuthCookieName is the name of the cookie carrying the bearer token.
	AuthCookieName = "authToken"
)

// # Media Uploads

const (
	// MaxImageBytes is the ceiling for banner and thumbnail uploads.
	MaxImageBytes = 5 << 20 // 5 MB

	// MaxVideoBytes is the ceiling for video file uploads.
	MaxVideoBytes = 10 << 20 // 10 MB

	// MaxMultipartMemory bounds the in-memory portion of multipart parsing;
	// the remainder spills to temporary files.
	MaxMultipartMemory = 8 << 20 // 8 MB
)

// # Listing Limits

const (
	// DefaultListLimit caps GET /video/ when no limit is supplied.
	DefaultListLimit = 100

	// DefaultSearchLimit caps GET /video/search when no limit is supplied.
	DefaultSearchLimit = 50

	// MaxListLimit is the absolute ceiling for any caller-supplied limit.
	MaxListLimit = 500
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixVideoList = "video:list:"
)
