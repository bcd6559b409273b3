package contact

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/services"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ContactRoutesManager struct {
	logger      *gecho.Logger
	leadService *services.LeadService
}

func NewContactRoutesManager(logger *gecho.Logger, leadService *services.LeadService) *ContactRoutesManager {
	return &ContactRoutesManager{
		logger:      logger,
		leadService: leadService,
	}
}

func (c *ContactRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/contact", c.CreateMessage)
}

// CreateMessage handles POST /contact.
func (c *ContactRoutesManager) CreateMessage(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.ContactRequest](r)
	if err != nil {
		c.logger.Warn("Invalid contact payload", gecho.Field("error", err))
		handling.RespondServiceError(w, c.logger, err, "error.contact.invalidPayload")
		return
	}

	msg, err := c.leadService.CreateContactMessage(r.Context(), req)
	if err != nil {
		handling.RespondServiceError(w, c.logger, err, "error.contact.failedToCreate")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("contact.received"),
		gecho.WithData(msg),
		gecho.Send(),
	)
}
