package structs

import "github.com/google/uuid"

// SlideRequest is the admin payload for creating or replacing a hero slide.
type SlideRequest struct {
	ImageURL    string `json:"image_url" validate:"required,url"`
	Alt         string `json:"alt" validate:"omitempty,max=200"`
	Title       string `json:"title" validate:"omitempty,max=200"`
	Subtitle    string `json:"subtitle" validate:"omitempty,max=500"`
	ButtonLabel string `json:"button_label" validate:"omitempty,max=100"`
	ButtonURL   string `json:"button_url" validate:"omitempty,max=500"`
	Position    *int   `json:"position" validate:"omitempty,gte=0"`
}

// SlideReorderRequest swaps the positions of two slides.
type SlideReorderRequest struct {
	A uuid.UUID `json:"a" validate:"required,uuid4"`
	B uuid.UUID `json:"b" validate:"required,uuid4"`
}
