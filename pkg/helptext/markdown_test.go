package helptext_test

import (
	"testing"

	"github.com/aretw0/cmdform/pkg/helptext"
	"github.com/stretchr/testify/assert"
)

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Hard breaks", "a\nb", "a  \nb"},
		{
			"Fenced block",
			"intro\n\b\n$ cli run\n\nmore",
			"intro\n\n```\n$ cli run\n```\n\nmore",
		},
		{
			"Fence outgrows backticks",
			"\b\n```go\nx := 1\n```\n\nafter",
			"````\n```go\nx := 1\n```\n````\n\nafter",
		},
		{
			"Open block is fenced",
			"\b\nx",
			"```\nx\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helptext.ToMarkdown(tt.in))
		})
	}
}
