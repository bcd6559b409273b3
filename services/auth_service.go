package services

import (
	"context"
	"lumina_server/database"
	"lumina_server/lib"
	"lumina_server/structs"
	"lumina_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// AuthService authenticates back-office accounts. There is no self-service
// registration; admin accounts are seeded out of band.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// Login verifies the credentials and returns a signed access token.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := database.Query[tables.AdminUser](as.db).
		Where("email", email).
		First(ctx)
	if err != nil {
		return "", lib.MapPgError(err)
	}
	if admin == nil {
		return "", lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPassword(password, admin.PasswordHash)
	if err != nil || !ok {
		return "", lib.ErrInvalidCredentials
	}

	return lib.GenerateToken(admin.Id, admin.Email, "admin", as.cfg.Auth.TokenSecret, as.cfg.Auth.TokenExpiry)
}

// GetTokenSecret exposes the signing secret to the auth middleware.
func (as *AuthService) GetTokenSecret() string {
	return as.cfg.Auth.TokenSecret
}
