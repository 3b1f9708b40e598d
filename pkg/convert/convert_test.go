// Copyright (c) 2026 Clipstream. All rights reserved.

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipstream/clipstream/pkg/convert"
)

/*
TestToInt verifies fault-tolerant string parsing.
*/
func TestToInt(t *testing.T) {
	assert.Equal(t, 42, convert.ToInt("42"))
	assert.Equal(t, 0, convert.ToInt(""))
	assert.Equal(t, 0, convert.ToInt("abc"))
	assert.Equal(t, -5, convert.ToInt("-5"))
}

/*
TestToIntClamped verifies query-limit parsing semantics.
*/
func TestToIntClamped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   int
		max   int
		want  int
	}{
		{"in_range", "50", 100, 500, 50},
		{"empty_falls_back", "", 100, 500, 100},
		{"malformed_falls_back", "lots", 100, 500, 100},
		{"zero_falls_back", "0", 100, 500, 100},
		{"negative_falls_back", "-3", 100, 500, 100},
		{"over_max_falls_back", "9999", 100, 500, 100},
		{"at_max", "500", 100, 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert.ToIntClamped(tt.input, tt.def, tt.max))
		})
	}
}
