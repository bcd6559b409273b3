package lib

import (
	"fmt"
	"math/rand"
	"time"
)

const panierCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePanierCode generates a human-readable order tracking code in the
// format PANIER-YYYYMMDD-XXXXXXXX, where the last segment is a random
// 8-character alphanumeric string. Uniqueness is enforced by the database
// constraint on order_number; at storefront volumes the collision window is
// negligible.
func GeneratePanierCode(now time.Time) string {
	// Use a local rand.Source + rand.Rand for thread safety
	src := rand.NewSource(now.UnixNano())
	r := rand.New(src)

	const length = 8
	randomPart := make([]byte, length)
	for i := range randomPart {
		randomPart[i] = panierCodeChars[r.Intn(len(panierCodeChars))]
	}

	return fmt.Sprintf("PANIER-%s-%s", now.Format("20060102"), string(randomPart))
}
