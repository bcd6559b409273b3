package structs

// CheckoutRequest is the payload submitted by the storefront cart.
// Field names follow the public wire format consumed by the frontend.
type CheckoutRequest struct {
	CustomerName string     `json:"customerName" validate:"required,min=2,max=100"`
	Email        string     `json:"email" validate:"required,email"`
	Phone        string     `json:"phone" validate:"required,phone"`
	Address      string     `json:"address" validate:"omitempty,max=200"`
	City         string     `json:"city" validate:"omitempty,max=100"`
	PostalCode   string     `json:"postalCode" validate:"omitempty,max=20"`
	CartItems    []CartItem `json:"cartItems" validate:"required,min=1,dive"`
}

// CartItem is a single cart line at checkout time. Price is the unit price
// in euros as displayed to the customer; it is snapshotted into the order.
type CartItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

// CheckoutResponse is returned after a successful checkout.
type CheckoutResponse struct {
	Success    bool   `json:"success"`
	PanierCode string `json:"panierCode"`
	Message    string `json:"message"`
}
