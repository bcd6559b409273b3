package structs

import "github.com/google/uuid"

// QuoteRequestInput is the lead-capture payload from a product page.
type QuoteRequestInput struct {
	Name      string     `json:"name" validate:"required,min=2,max=100"`
	Email     string     `json:"email" validate:"required,email"`
	Phone     string     `json:"phone" validate:"omitempty,phone"`
	ProductID *uuid.UUID `json:"product_id" validate:"omitempty,uuid4"`
	Message   string     `json:"message" validate:"omitempty,max=2000"`
}

// QuoteStatusRequest moves a quote request through its lifecycle.
type QuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}
