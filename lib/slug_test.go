package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Suspension Halo", "suspension-halo"},
		{"already slug", "applique-murale", "applique-murale"},
		{"accents stripped", "Lampe à poser Éclat", "lampe-poser-clat"},
		{"punctuation stripped", "Lustre \"Royal\" (Edition 2)", "lustre-royal-edition-2"},
		{"collapse separators", "spot  --  encastré", "spot-encastr"},
		{"underscores", "hero_slide_01", "hero-slide-01"},
		{"leading and trailing", "  - Néon - ", "non"},
		{"empty", "", ""},
		{"only separators", " -_- ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
