// Copyright (c) 2026 Clipstream. All rights reserved.

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/clipstream/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies hashing and verification agree.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, sec.CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-pass", hash))
}

/*
TestNewTokenService_EmptySecret verifies construction fails fast on a
missing secret.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "clipstream.app", time.Hour)
	require.Error(t, err)
}

/*
TestTokenService_RoundTrip verifies an issued token is accepted and yields
the same identity claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "clipstream.app", time.Hour)
	require.NoError(t, err)

	token, err := service.Generate("user-123", "alex@clipstream.app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alex@clipstream.app", claims.Email)
	assert.Equal(t, "clipstream.app", claims.Issuer)
}

/*
TestTokenService_TamperedSignature verifies signature alterations are
rejected with an error, never a panic.
*/
func TestTokenService_TamperedSignature(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "clipstream.app", time.Hour)
	require.NoError(t, err)

	token, err := service.Generate("user-123", "alex@clipstream.app")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	signature := []byte(parts[2])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(signature)

	claims, err := service.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_WrongSecret verifies tokens from another secret fail.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuer, err := sec.NewTokenService("secret-a", "clipstream.app", time.Hour)
	require.NoError(t, err)
	verifier, err := sec.NewTokenService("secret-b", "clipstream.app", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Generate("user-123", "alex@clipstream.app")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

/*
TestTokenService_Expired verifies expired tokens are rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "clipstream.app", -time.Minute)
	require.NoError(t, err)

	token, err := service.Generate("user-123", "alex@clipstream.app")
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.Error(t, err)
}

/*
TestTokenService_Malformed verifies garbage input yields an error.
*/
func TestTokenService_Malformed(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "clipstream.app", time.Hour)
	require.NoError(t, err)

	for _, garbage := range []string{"", "abc", "a.b.c"} {
		_, err := service.Verify(garbage)
		assert.Error(t, err)
	}
}
