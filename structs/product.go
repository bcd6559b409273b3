package structs

import "github.com/google/uuid"

// ProductRequest is the admin payload for creating or replacing a product.
// Slug is optional; when empty it is derived from the name.
type ProductRequest struct {
	Name         string              `json:"name" validate:"required,min=2,max=200"`
	Slug         string              `json:"slug" validate:"omitempty,min=2,max=200"`
	Description  string              `json:"description" validate:"omitempty,max=5000"`
	Category     string              `json:"category" validate:"omitempty,max=100"`
	CollectionID *uuid.UUID          `json:"collection_id" validate:"omitempty,uuid4"`
	PdfURL       string              `json:"pdf_url" validate:"omitempty,url"`
	Images       []ProductImageInput `json:"images" validate:"omitempty,dive"`
	Specs        []ProductSpecInput  `json:"specs" validate:"omitempty,dive"`
}

type ProductImageInput struct {
	URL string `json:"url" validate:"required,url"`
	Alt string `json:"alt" validate:"omitempty,max=200"`
}

type ProductSpecInput struct {
	Label string `json:"label" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=500"`
}
