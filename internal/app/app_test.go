package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"example.com", "app.example.com:8443", "*.shelf.dev"}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"exact host", "https://example.com", true},
		{"exact host with port", "https://app.example.com:8443", true},
		{"wildcard subdomain", "https://api.shelf.dev", true},
		{"nested wildcard subdomain", "https://a.b.shelf.dev", true},
		{"bare origin without scheme", "example.com", true},
		{"wrong port", "https://example.com:9000", false},
		{"unlisted host", "https://evil.com", false},
		{"wildcard base domain does not match itself", "https://shelf.dev", false},
		{"suffix spoof", "https://notexample.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, originAllowed(patterns, tt.origin))
		})
	}

	assert.False(t, originAllowed(nil, "https://example.com"))
}
