package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		accept string
		want   Representation
		ok     bool
	}{
		{"application/json", RepresentationJSON, true},
		{"text/plain", RepresentationText, true},
		{"text/plain; charset=utf-8", RepresentationText, true},
		{"Application/JSON", RepresentationJSON, true},
		{"text/plain;q=0.5, application/json", RepresentationJSON, true},
		{"application/json;q=0.2, text/plain;q=0.9", RepresentationText, true},
		{"image/png, text/plain;q=0.1", RepresentationText, true},
		{"text/html, application/json;q=0", "", false},
		{"image/png", "", false},
		{"*/*", "", false},
		{"text/*", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			got, ok := Negotiate(tt.accept)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
