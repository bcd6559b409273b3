package services

import (
	"context"
	"lumina_server/database"
	"lumina_server/lib"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// LeadService handles the lead-capture entities: quote requests and contact
// messages. Both notify the shop inbox fire-and-forget on creation.
type LeadService struct {
	logger       *gecho.Logger
	db           *database.DB
	emailService *EmailService
}

func NewLeadService(logger *gecho.Logger, db *database.DB, emailService *EmailService) *LeadService {
	return &LeadService{
		logger:       logger,
		db:           db,
		emailService: emailService,
	}
}

// CreateQuoteRequest stores a quote request and notifies the shop.
func (ls *LeadService) CreateQuoteRequest(ctx context.Context, req *structs.QuoteRequestInput) (*tables.QuoteRequest, error) {
	quote := &tables.QuoteRequest{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		ProductID: req.ProductID,
		Message:   req.Message,
		Status:    tables.QuoteStatusNew,
		CreatedAt: time.Now(),
	}

	if _, err := database.Create(ls.db, ctx, quote); err != nil {
		return nil, lib.MapPgError(err)
	}

	go func() {
		if err := ls.emailService.SendQuoteNotificationEmail(quote); err != nil {
			ls.logger.Error("Failed to send quote notification email",
				gecho.Field("error", err),
				gecho.Field("quote_id", quote.ID))
		}
	}()

	return quote, nil
}

// ListQuotes returns quote requests, newest first, optionally filtered by status.
func (ls *LeadService) ListQuotes(ctx context.Context, status *tables.QuoteStatus, page, pageSize int) (*database.PaginationResult[tables.QuoteRequest], error) {
	query := database.Query[tables.QuoteRequest](ls.db).
		OrderBy("created_at", database.DESC)

	if status != nil {
		query = query.Where("status", *status)
	}

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// UpdateQuoteStatus moves a quote through its new/read/responded lifecycle.
func (ls *LeadService) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status tables.QuoteStatus) error {
	updated, err := database.UpdateByID[tables.QuoteRequest](ls.db, ctx, id, map[string]any{
		"status": status,
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if updated == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// DeleteQuote removes a quote request.
func (ls *LeadService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	deleted, err := database.DeleteByID[tables.QuoteRequest](ls.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// CreateContactMessage stores a contact-form message and notifies the shop.
func (ls *LeadService) CreateContactMessage(ctx context.Context, req *structs.ContactRequest) (*tables.ContactMessage, error) {
	msg := &tables.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if _, err := database.Create(ls.db, ctx, msg); err != nil {
		return nil, lib.MapPgError(err)
	}

	go func() {
		if err := ls.emailService.SendContactNotificationEmail(msg); err != nil {
			ls.logger.Error("Failed to send contact notification email",
				gecho.Field("error", err),
				gecho.Field("message_id", msg.ID))
		}
	}()

	return msg, nil
}

// ListContactMessages returns contact messages, newest first.
func (ls *LeadService) ListContactMessages(ctx context.Context, page, pageSize int) (*database.PaginationResult[tables.ContactMessage], error) {
	query := database.Query[tables.ContactMessage](ls.db).
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// MarkContactMessageRead flags a contact message as read.
func (ls *LeadService) MarkContactMessageRead(ctx context.Context, id uuid.UUID) error {
	updated, err := database.UpdateByID[tables.ContactMessage](ls.db, ctx, id, map[string]any{
		"read": true,
	})
	if err != nil {
		return lib.MapPgError(err)
	}
	if updated == 0 {
		return lib.ErrNotFound
	}
	return nil
}
