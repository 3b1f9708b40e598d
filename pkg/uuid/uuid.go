// Copyright (c) 2026 Clipstream. All rights reserved.

/*
Package uuid provides time-ordered unique identifiers for the platform.

It wraps the standard UUID library to specifically generate Version 7 values,
which are optimized for database performance.

Advantages:

  - Sortable: Naturally ordered by creation time (millisecond precision).
  - Friendly: Prevents index fragmentation in PostgreSQL (B-tree optimal).
  - Compact: 128-bit storage, compatible with standard 'uuid' types.

This is the mandatory ID type for all primary keys in the Clipstream ecosystem.
*/
package uuid

import (
	"regexp"

	"github.com/google/uuid"
)

// canonicalForm matches the 36-character hyphenated UUID form and nothing
// else. uuid.Parse also accepts urn:uuid: prefixes and braced forms that
// the database's uuid codec rejects.
var canonicalForm = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUID: " + err.Error())
	}

	// Convert the UUID to a string
	return id.String()
}

// IsValid reports whether s is a canonical hyphenated UUID string.
//
// It is used to reject malformed identifiers before any storage lookup.
func IsValid(s string) bool {
	return canonicalForm.MatchString(s)
}
