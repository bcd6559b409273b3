package tables

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account. Accounts are seeded out of band; there is
// no self-service registration.
type AdminUser struct {
	tableName    struct{}  `bun:"table:admin_users,alias:au"`
	Id           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
