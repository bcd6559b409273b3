package tables

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlide is a homepage banner entry. Slides are displayed ordered by
// Position; reordering swaps two positions inside a transaction.
type HeroSlide struct {
	tableName   struct{}  `bun:"table:hero_slides,alias:hs"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ImageURL    string    `bun:"image_url,notnull" json:"image_url"`
	Alt         string    `bun:"alt" json:"alt,omitempty"`
	Title       string    `bun:"title" json:"title,omitempty"`
	Subtitle    string    `bun:"subtitle" json:"subtitle,omitempty"`
	ButtonLabel string    `bun:"button_label" json:"button_label,omitempty"`
	ButtonURL   string    `bun:"button_url" json:"button_url,omitempty"`
	Position    int       `bun:"position,notnull" json:"position"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
