package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"lumina_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAndValidateBodyCheckout(t *testing.T) {
	valid := `{
		"customerName": "Claire Fontaine",
		"email": "claire@example.fr",
		"phone": "+33 6 12 34 56 78",
		"address": "12 rue des Lilas",
		"city": "Lyon",
		"postalCode": "69003",
		"cartItems": [
			{"id": "lampe-halo", "name": "Lampe Halo", "price": 49.99, "quantity": 2}
		]
	}`

	r := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(valid))
	req, err := ExtractAndValidateBody[structs.CheckoutRequest](r)
	require.NoError(t, err)

	assert.Equal(t, "Claire Fontaine", req.CustomerName)
	require.Len(t, req.CartItems, 1)
	assert.Equal(t, 49.99, req.CartItems[0].Price)
	assert.Equal(t, 2, req.CartItems[0].Quantity)
}

func TestExtractAndValidateBodyCheckoutFailures(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing name",
			body:  `{"email":"a@b.fr","phone":"0612345678","cartItems":[{"id":"x","name":"X","price":1,"quantity":1}]}`,
			field: "customername",
		},
		{
			name:  "bad email",
			body:  `{"customerName":"Jean","email":"not-an-email","phone":"0612345678","cartItems":[{"id":"x","name":"X","price":1,"quantity":1}]}`,
			field: "email",
		},
		{
			name:  "bad phone",
			body:  `{"customerName":"Jean","email":"a@b.fr","phone":"call me","cartItems":[{"id":"x","name":"X","price":1,"quantity":1}]}`,
			field: "phone",
		},
		{
			name:  "empty cart",
			body:  `{"customerName":"Jean","email":"a@b.fr","phone":"0612345678","cartItems":[]}`,
			field: "cartitems",
		},
		{
			name:  "zero price item",
			body:  `{"customerName":"Jean","email":"a@b.fr","phone":"0612345678","cartItems":[{"id":"x","name":"X","price":0,"quantity":1}]}`,
			field: "price",
		},
		{
			name:  "zero quantity item",
			body:  `{"customerName":"Jean","email":"a@b.fr","phone":"0612345678","cartItems":[{"id":"x","name":"X","price":1,"quantity":0}]}`,
			field: "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(tt.body))
			_, err := ExtractAndValidateBody[structs.CheckoutRequest](r)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)

			found := false
			for _, fe := range ve.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a validation error on %q, got %+v", tt.field, ve.Errors)
		})
	}
}

func TestExtractAndValidateBodyRejectsUnknownFields(t *testing.T) {
	body := `{"customerName":"Jean","email":"a@b.fr","phone":"0612345678","cartItems":[{"id":"x","name":"X","price":1,"quantity":1}],"isAdmin":true}`

	r := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(body))
	_, err := ExtractAndValidateBody[structs.CheckoutRequest](r)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(`{"customerName":`))
	_, err := ExtractAndValidateBody[structs.CheckoutRequest](r)
	assert.Error(t, err)
}

func TestPhonePattern(t *testing.T) {
	valid := []string{"0612345678", "+33 6 12 34 56 78", "(04) 78-12-34", "06.12" + "345678"}
	for _, p := range valid {
		assert.Regexp(t, phonePattern, p, "expected %q to be accepted", p)
	}

	invalid := []string{"", "12345", "phone", "+33612345678901234567890"}
	for _, p := range invalid {
		assert.NotRegexp(t, phonePattern, p, "expected %q to be rejected", p)
	}
}
