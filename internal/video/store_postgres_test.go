// Copyright (c) 2026 Clipstream. All rights reserved.

package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestEscapeLike verifies user-supplied search substrings cannot smuggle
pattern wildcards into the query.
*/
func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "golang tutorial", "golang tutorial"},
		{"percent", "100% legit", `100\% legit`},
		{"underscore", "snake_case", `snake\_case`},
		{"backslash", `c:\videos`, `c:\\videos`},
		{"all_wildcards", `\%_`, `\\\%\_`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.input))
		})
	}
}
