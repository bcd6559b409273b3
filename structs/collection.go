package structs

// CollectionRequest is the admin payload for creating or replacing a collection.
type CollectionRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Slug        string `json:"slug" validate:"omitempty,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}
