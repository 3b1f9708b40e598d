// Copyright (c) 2026 Clipstream. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipstream/clipstream/pkg/slug"
)

/*
TestFrom verifies the slug transformation pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Tech Reviews", "tech-reviews"},
		{"accents", "Café Münchën", "cafe-munchen"},
		{"special_chars", "Go & Rust: a comparison!", "go-rust-a-comparison"},
		{"collapsed_hyphens", "a  --  b", "a-b"},
		{"trimmed", "  padded  ", "padded"},
		{"numbers", "Top 10 Videos", "top-10-videos"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
