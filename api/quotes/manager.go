package quotes

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/services"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type QuoteRoutesManager struct {
	logger      *gecho.Logger
	leadService *services.LeadService
}

func NewQuoteRoutesManager(logger *gecho.Logger, leadService *services.LeadService) *QuoteRoutesManager {
	return &QuoteRoutesManager{
		logger:      logger,
		leadService: leadService,
	}
}

func (q *QuoteRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/quotes", q.CreateQuote)
}

// CreateQuote handles POST /quotes. The shop is notified by email; the
// request itself succeeds regardless of email delivery.
func (q *QuoteRoutesManager) CreateQuote(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.QuoteRequestInput](r)
	if err != nil {
		q.logger.Warn("Invalid quote payload", gecho.Field("error", err))
		handling.RespondServiceError(w, q.logger, err, "error.quotes.invalidPayload")
		return
	}

	quote, err := q.leadService.CreateQuoteRequest(r.Context(), req)
	if err != nil {
		handling.RespondServiceError(w, q.logger, err, "error.quotes.failedToCreate")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("quote.received"),
		gecho.WithData(quote),
		gecho.Send(),
	)
}
