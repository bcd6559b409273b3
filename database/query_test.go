package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "PANIER-20260830-A1B2C3D4", "PANIER-20260830-A1B2C3D4"},
		{"percent escaped", "%", `\%`},
		{"percent in term", "100%", `100\%`},
		{"underscore escaped", "a_b", `a\_b`},
		{"backslash escaped first", `a\%b`, `a\\\%b`},
		{"all metacharacters", `\%_`, `\\\%\_`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLike(tt.input))
		})
	}
}
