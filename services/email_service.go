package services

import (
	"fmt"
	"html"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService sends transactional email through Resend. Every send is
// best-effort: callers dispatch from goroutines and only log failures, the
// HTTP response never waits on a provider round-trip.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmationEmail sends the customer their panier code and a
// recap of the order.
func (es *EmailService) SendOrderConfirmationEmail(order *tables.Order) error {
	subject := fmt.Sprintf("Votre commande %s", order.OrderNumber)
	return es.SendEmail([]string{order.Email}, subject, orderConfirmationBody(order))
}

func orderConfirmationBody(order *tables.Order) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #1a1a2e; color: #f5c518; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.code { font-size: 20px; font-weight: bold; letter-spacing: 1px; }
				table { width: 100%%; border-collapse: collapse; }
				td, th { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; }
				.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Merci pour votre commande !</h1>
				</div>
				<div class="content">
					<p>Bonjour %s,</p>
					<p>Nous avons bien reçu votre commande. Voici votre code de suivi :</p>
					<p class="code">%s</p>
					%s
					<p>Total : <strong>%.2f €</strong></p>
					<p>Nous vous contacterons pour confirmer la livraison.</p>
				</div>
				<div class="footer">
					<p>Lumina | Luminaires d'exception</p>
				</div>
			</div>
		</body>
		</html>
	`, html.EscapeString(order.CustomerName), order.OrderNumber, renderOrderItemsTable(order.Items), order.Total)
}

// SendOrderNotificationEmail alerts the shop inbox about a new order.
func (es *EmailService) SendOrderNotificationEmail(order *tables.Order) error {
	subject := fmt.Sprintf("Nouvelle commande %s (%.2f €)", order.OrderNumber, order.Total)
	return es.SendEmail([]string{es.cfg.Email.ShopAddress}, subject, orderNotificationBody(order))
}

func orderNotificationBody(order *tables.Order) string {
	return fmt.Sprintf(`
		<h2>Nouvelle commande %s</h2>
		<p><strong>Client :</strong> %s (%s, %s)</p>
		<p><strong>Adresse :</strong> %s, %s %s</p>
		%s
		<p><strong>Total : %.2f €</strong></p>
	`, order.OrderNumber,
		html.EscapeString(order.CustomerName), html.EscapeString(order.Email), html.EscapeString(order.Phone),
		html.EscapeString(order.Address), html.EscapeString(order.PostalCode), html.EscapeString(order.City),
		renderOrderItemsTable(order.Items), order.Total)
}

// SendQuoteNotificationEmail alerts the shop inbox about a new quote request.
func (es *EmailService) SendQuoteNotificationEmail(quote *tables.QuoteRequest) error {
	subject := fmt.Sprintf("Nouvelle demande de devis de %s", quote.Name)
	return es.SendEmail([]string{es.cfg.Email.ShopAddress}, subject, quoteNotificationBody(quote))
}

func quoteNotificationBody(quote *tables.QuoteRequest) string {
	productRef := "non précisé"
	if quote.ProductID != nil {
		productRef = quote.ProductID.String()
	}

	return fmt.Sprintf(`
		<h2>Nouvelle demande de devis</h2>
		<p><strong>Nom :</strong> %s</p>
		<p><strong>Email :</strong> %s</p>
		<p><strong>Téléphone :</strong> %s</p>
		<p><strong>Produit :</strong> %s</p>
		<p><strong>Message :</strong></p>
		<p>%s</p>
	`, html.EscapeString(quote.Name), html.EscapeString(quote.Email),
		html.EscapeString(quote.Phone), productRef, html.EscapeString(quote.Message))
}

// SendContactNotificationEmail alerts the shop inbox about a contact message.
func (es *EmailService) SendContactNotificationEmail(msg *tables.ContactMessage) error {
	subject := fmt.Sprintf("Nouveau message de %s", msg.Name)
	if msg.Subject != "" {
		subject = fmt.Sprintf("Contact : %s", msg.Subject)
	}

	return es.SendEmail([]string{es.cfg.Email.ShopAddress}, subject, contactNotificationBody(msg))
}

func contactNotificationBody(msg *tables.ContactMessage) string {
	return fmt.Sprintf(`
		<h2>Nouveau message de contact</h2>
		<p><strong>Nom :</strong> %s</p>
		<p><strong>Email :</strong> %s</p>
		<p>%s</p>
	`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Message))
}

// renderOrderItemsTable renders line items as an HTML table. Product names are
// customer-submitted (they arrive in the cart payload), so they are escaped.
func renderOrderItemsTable(items []tables.OrderItem) string {
	var b strings.Builder
	b.WriteString(`<table><tr><th>Produit</th><th>Qté</th><th>Prix</th><th>Total</th></tr>`)
	for _, item := range items {
		fmt.Fprintf(&b, `<tr><td>%s</td><td>%d</td><td>%.2f €</td><td>%.2f €</td></tr>`,
			html.EscapeString(item.ProductName), item.Quantity, item.UnitPrice, item.LineTotal)
	}
	b.WriteString(`</table>`)
	return b.String()
}
