package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"exact", 99.98, 99.98},
		{"round up", 10.005, 10.01},
		{"round down", 10.004, 10.0},
		{"float artifact", 49.99 * 2, 99.98},
		{"three items", 19.99 * 3, 59.97},
		{"zero", 0, 0},
		{"integer", 120, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundCents(tt.input), 1e-9)
		})
	}
}
