package admin

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListQuotes handles GET /admin/quotes with optional ?status= filtering.
func (a *AdminRoutesManager) ListQuotes(w http.ResponseWriter, r *http.Request) {
	page, pageSize := handling.ParsePagination(r)

	var status *tables.QuoteStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		switch s := tables.QuoteStatus(raw); s {
		case tables.QuoteStatusNew, tables.QuoteStatusRead, tables.QuoteStatusResponded:
			status = &s
		default:
			gecho.BadRequest(w,
				gecho.WithMessage("error.quotes.invalidStatus"),
				gecho.WithData(raw),
				gecho.Send(),
			)
			return
		}
	}

	result, err := a.leadService.ListQuotes(r.Context(), status, page, pageSize)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.quotes.failedToFetch")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"quotes":     result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// UpdateQuoteStatus handles PUT /admin/quotes/{id}/status.
func (a *AdminRoutesManager) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.QuoteStatusRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.quotes.invalidPayload")
		return
	}

	if err := a.leadService.UpdateQuoteStatus(r.Context(), id, tables.QuoteStatus(req.Status)); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.quotes.failedToUpdate")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("quotes.statusUpdated"),
		gecho.Send(),
	)
}

// DeleteQuote handles DELETE /admin/quotes/{id}.
func (a *AdminRoutesManager) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := a.leadService.DeleteQuote(r.Context(), id); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.quotes.failedToDelete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("quotes.deleted"),
		gecho.Send(),
	)
}

// ListContactMessages handles GET /admin/contact.
func (a *AdminRoutesManager) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	page, pageSize := handling.ParsePagination(r)

	result, err := a.leadService.ListContactMessages(r.Context(), page, pageSize)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.contact.failedToFetch")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"messages":   result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// MarkContactMessageRead handles PUT /admin/contact/{id}/read.
func (a *AdminRoutesManager) MarkContactMessageRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := a.leadService.MarkContactMessageRead(r.Context(), id); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.contact.failedToUpdate")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("contact.markedRead"),
		gecho.Send(),
	)
}
