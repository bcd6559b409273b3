package tables

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	tableName struct{}  `bun:"table:contact_messages,alias:cm"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Subject   string    `bun:"subject" json:"subject,omitempty"`
	Message   string    `bun:"message,notnull" json:"message"`
	Read      bool      `bun:"read,notnull,default:false" json:"read"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
