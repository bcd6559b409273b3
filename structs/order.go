package structs

// OrderStatusRequest updates the status of an order. French aliases used by the
// back-office UI (en_attente, confirmee, expediee, livree, annulee) are accepted
// and normalized before validation.
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderUpdateRequest is the admin full-replace edit of an order. The customer
// snapshot and line items are replaced wholesale; the total is recomputed from
// the submitted items.
type OrderUpdateRequest struct {
	CustomerName string     `json:"customerName" validate:"required,min=2,max=100"`
	Email        string     `json:"email" validate:"required,email"`
	Phone        string     `json:"phone" validate:"required,phone"`
	Address      string     `json:"address" validate:"omitempty,max=200"`
	City         string     `json:"city" validate:"omitempty,max=100"`
	PostalCode   string     `json:"postalCode" validate:"omitempty,max=20"`
	Items        []CartItem `json:"items" validate:"required,min=1,dive"`
}
