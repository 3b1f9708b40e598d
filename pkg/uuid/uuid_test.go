// Copyright (c) 2026 Clipstream. All rights reserved.

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipstream/clipstream/pkg/uuid"
)

/*
TestNew verifies generated identifiers are canonical.
*/
func TestNew(t *testing.T) {
	id := uuid.New()
	assert.Len(t, id, 36)
	assert.True(t, uuid.IsValid(id))
}

/*
TestIsValid verifies only the canonical hyphenated form is accepted. The
wider forms the upstream parser tolerates are rejected because the
database's uuid codec does not take them.
*/
func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"canonical", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"uppercase_hex", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", true},
		{"urn_prefix", "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"braced", "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}", false},
		{"unhyphenated", "6ba7b8109dad11d180b400c04fd430c8", false},
		{"too_short", "6ba7b810-9dad-11d1-80b4", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uuid.IsValid(tt.input))
		})
	}
}
