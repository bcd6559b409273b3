package tables

import (
	"time"

	"github.com/google/uuid"
)

type Collection struct {
	tableName   struct{}  `bun:"table:collections,alias:c"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`
	ImageURL    string    `bun:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Products []Product `bun:"rel:has-many,join:id=collection_id" json:"products,omitempty"`
}
