package tables

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	tableName   struct{}   `bun:"table:products,alias:p"`
	ID          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Slug        string     `bun:"slug,notnull,unique" json:"slug"` // usable interchangeably with the id for lookups
	Name        string     `bun:"name,notnull" json:"name"`
	Description string     `bun:"description" json:"description,omitempty"`
	Category    string     `bun:"category" json:"category,omitempty"`
	PdfURL      string     `bun:"pdf_url" json:"pdf_url,omitempty"` // spec-sheet PDF
	CollectionID *uuid.UUID `bun:"collection_id,type:uuid" json:"collection_id,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Images []ProductImage `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
	Specs  []ProductSpec  `bun:"rel:has-many,join:id=product_id" json:"specs,omitempty"`
}

// ProductImage is an ordered image attached to a product.
type ProductImage struct {
	tableName struct{}  `bun:"table:product_images,alias:pi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	URL       string    `bun:"url,notnull" json:"url"`
	Alt       string    `bun:"alt" json:"alt,omitempty"`
	Position  int       `bun:"position,notnull" json:"position"`
}

// ProductSpec is an ordered label/value specification pair.
type ProductSpec struct {
	tableName struct{}  `bun:"table:product_specs,alias:ps"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID uuid.UUID `bun:"product_id,type:uuid,notnull" json:"product_id"`
	Label     string    `bun:"label,notnull" json:"label"`
	Value     string    `bun:"value,notnull" json:"value"`
	Position  int       `bun:"position,notnull" json:"position"`
}
