package tables

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	tableName   struct{}  `bun:"table:orders,alias:o"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderNumber string    `bun:"order_number,notnull,unique" json:"order_number"`

	// Customer snapshot, copied at checkout time. Not a live reference.
	CustomerName string `bun:"customer_name,notnull" json:"customer_name"`
	Email        string `bun:"email,notnull" json:"email"`
	Phone        string `bun:"phone,notnull" json:"phone"`
	Address      string `bun:"address" json:"address,omitempty"`
	City         string `bun:"city" json:"city,omitempty"`
	PostalCode   string `bun:"postal_code" json:"postal_code,omitempty"`

	// Total in euros, computed once at creation as the sum of line totals.
	Total float64 `bun:"total,notnull" json:"total"`

	Status    OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time   `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId string    `bun:"product_id,notnull" json:"product_id"`

	// Snapshot of the product at order time.
	ProductName string  `bun:"product_name,notnull" json:"product_name"`
	UnitPrice   float64 `bun:"unit_price,notnull" json:"unit_price"`
	Quantity    int     `bun:"quantity,notnull" json:"quantity"`
	LineTotal   float64 `bun:"line_total,notnull" json:"line_total"` // quantity * unit_price
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderStatusAliases maps the French labels used by the back-office UI onto the
// canonical statuses.
var orderStatusAliases = map[string]OrderStatus{
	"en_attente": OrderStatusPending,
	"confirmee":  OrderStatusConfirmed,
	"en_cours":   OrderStatusConfirmed,
	"expediee":   OrderStatusShipped,
	"livree":     OrderStatusDelivered,
	"annulee":    OrderStatusCancelled,
}

// ParseOrderStatus normalizes a status string (canonical or French alias) into
// an OrderStatus. The boolean reports whether the input was recognized.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	if status, ok := orderStatusAliases[s]; ok {
		return status, true
	}
	return "", false
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step. Same-status updates are allowed as no-ops; delivered and cancelled are
// terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusConfirmed:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}
