package tables

import (
	"time"

	"github.com/google/uuid"
)

// QuoteRequest is a lead-capture entity, independent from orders. There is no
// conversion path from a quote to an order.
type QuoteRequest struct {
	tableName struct{}    `bun:"table:quote_requests,alias:qr"`
	ID        uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string      `bun:"name,notnull" json:"name"`
	Email     string      `bun:"email,notnull" json:"email"`
	Phone     string      `bun:"phone" json:"phone,omitempty"`
	ProductID *uuid.UUID  `bun:"product_id,type:uuid" json:"product_id,omitempty"`
	Message   string      `bun:"message" json:"message,omitempty"`
	Status    QuoteStatus `bun:"status,notnull,default:'new'" json:"status"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusRead      QuoteStatus = "read"
	QuoteStatusResponded QuoteStatus = "responded"
)
