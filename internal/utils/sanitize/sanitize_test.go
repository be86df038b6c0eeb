package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "removes script tags",
			input: `<script>alert('xss')</script>Hello world`,
			want:  "Hello world",
		},
		{
			name:  "preserves plain text",
			input: "Just plain text",
			want:  "Just plain text",
		},
		{
			name:  "handles empty string",
			input: "",
			want:  "",
		},
		{
			name:  "removes dangerous attributes",
			input: `<p onclick="alert('xss')">Safe text</p>`,
			want:  " Safe text ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips tags and trims",
			input: "  <p>Jane Doe</p>  ",
			want:  "Jane Doe",
		},
		{
			name:  "collapses internal spacing",
			input: "<b>221B</b>   <b>Baker Street</b>",
			want:  "221B Baker Street",
		},
		{
			name:  "normalizes non-breaking spaces",
			input: "Jane Doe",
			want:  "Jane Doe",
		},
		{
			name:  "drops script content entirely",
			input: "<script>alert(1)</script>",
			want:  "",
		},
		{
			name:  "preserves newlines in bios",
			input: "line one\nline   two",
			want:  "line one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}
