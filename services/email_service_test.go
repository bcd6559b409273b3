package services

import (
	"strings"
	"testing"

	"lumina_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderOrderItemsTableEscapesProductNames(t *testing.T) {
	items := []tables.OrderItem{
		{ProductName: `Lampe <script>alert("x")</script>`, Quantity: 1, UnitPrice: 49.99, LineTotal: 49.99},
		{ProductName: "Suspension Halo", Quantity: 2, UnitPrice: 25.00, LineTotal: 50.00},
	}

	out := renderOrderItemsTable(items)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "Suspension Halo")
	assert.Contains(t, out, "49.99")
}

func TestOrderEmailBodiesEscapeCustomerFields(t *testing.T) {
	order := &tables.Order{
		OrderNumber:  "PANIER-20260830-A1B2C3D4",
		CustomerName: `<img src=x onerror=alert(1)>`,
		Email:        "client@example.fr",
		Phone:        "0612345678",
		Address:      `12 rue <b>des Lilas</b>`,
		City:         "Lyon",
		PostalCode:   "69003",
		Total:        99.98,
		Items: []tables.OrderItem{
			{ProductName: "Lampe Halo", Quantity: 2, UnitPrice: 49.99, LineTotal: 99.98},
		},
	}

	for name, body := range map[string]string{
		"confirmation": orderConfirmationBody(order),
		"notification": orderNotificationBody(order),
	} {
		assert.NotContains(t, body, "<img", "%s body must escape the customer name", name)
		assert.Contains(t, body, "&lt;img", name)
		assert.Contains(t, body, order.OrderNumber, name)
	}

	notif := orderNotificationBody(order)
	assert.NotContains(t, notif, "<b>des Lilas</b>")
	assert.Contains(t, notif, "&lt;b&gt;des Lilas&lt;/b&gt;")
}

func TestQuoteNotificationBodyEscapesMessage(t *testing.T) {
	productID := uuid.New()
	quote := &tables.QuoteRequest{
		Name:      "Jean <Durand>",
		Email:     "jean@example.fr",
		Phone:     "0612345678",
		ProductID: &productID,
		Message:   `Devis pour 10 lampes <style>body{display:none}</style>`,
	}

	body := quoteNotificationBody(quote)

	assert.NotContains(t, body, "<style>")
	assert.Contains(t, body, "&lt;style&gt;")
	assert.Contains(t, body, "Jean &lt;Durand&gt;")
	assert.Contains(t, body, productID.String())
}

func TestQuoteNotificationBodyWithoutProduct(t *testing.T) {
	body := quoteNotificationBody(&tables.QuoteRequest{
		Name:  "Claire",
		Email: "claire@example.fr",
	})

	assert.Contains(t, body, "non précisé")
}

func TestContactNotificationBodyEscapesMessage(t *testing.T) {
	msg := &tables.ContactMessage{
		Name:    "Paul",
		Email:   "paul@example.fr",
		Message: `Bonjour,<script src="https://evil.example/x.js"></script>`,
	}

	body := contactNotificationBody(msg)

	assert.NotContains(t, body, "<script")
	assert.True(t, strings.Contains(body, "&lt;script"))
}
