package auth

import (
	"errors"
	"lumina_server/lib"
	"lumina_server/services"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
}

func NewAuthRoutesManager(logger *gecho.Logger, authService *services.AuthService) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
	}
}

func (a *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", a.Login)
	})
}

// Login handles POST /auth/login and returns a bearer token on success.
// Unknown accounts and bad passwords get the same response.
func (a *AuthRoutesManager) Login(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.auth.invalidPayload"),
			gecho.Send(),
		)
		return
	}

	token, err := a.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidCredentials) {
			a.logger.Warn("Failed login attempt", gecho.Field("email", req.Email))
			gecho.Unauthorized(w,
				gecho.WithMessage("error.auth.invalidCredentials"),
				gecho.Send(),
			)
			return
		}
		a.logger.Error("Login failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.auth.loginFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"token": token}),
		gecho.Send(),
	)
}
