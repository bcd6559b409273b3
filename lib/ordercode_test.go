package lib

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var panierCodePattern = regexp.MustCompile(`^PANIER-\d{8}-[A-Z0-9]{8}$`)

func TestGeneratePanierCodeFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 589793, time.UTC)

	code := GeneratePanierCode(now)

	require.Regexp(t, panierCodePattern, code)
	assert.Equal(t, "PANIER-20260314-", code[:16])
	assert.Len(t, code, 24)
}

func TestGeneratePanierCodeUsesLocalDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		date string
	}{
		{"new year", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "20260101"},
		{"end of year", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), "20251231"},
		{"leap day", time.Date(2028, 2, 29, 12, 0, 0, 0, time.UTC), "20280229"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := GeneratePanierCode(tt.now)
			assert.Equal(t, "PANIER-"+tt.date+"-", code[:16])
		})
	}
}

func TestGeneratePanierCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GeneratePanierCode(time.Now())
		seen[code] = true
	}
	// The random segment is nanosecond-seeded; a batch should not collapse
	// onto a single value.
	assert.Greater(t, len(seen), 1)
}
