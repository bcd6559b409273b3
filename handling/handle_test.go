package handling

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lumina_server/lib"
	"lumina_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestRespondServiceError(t *testing.T) {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))

	decodeErr := func() error {
		r := httptest.NewRequest("POST", "/api/checkout", strings.NewReader(`{"customerName":`))
		_, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
		return err
	}()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation error", &lib.ValidationError{Errors: []lib.FieldError{{Field: "email", Message: "is required"}}}, http.StatusBadRequest},
		{"malformed json", decodeErr, http.StatusBadRequest},
		{"empty body", errors.Join(nil, jsonEOF()), http.StatusBadRequest},
		{"body over size limit", &http.MaxBytesError{Limit: 8}, http.StatusBadRequest},
		{"not found", lib.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("fetch order"), lib.ErrNotFound), http.StatusNotFound},
		{"conflict", lib.ErrConflict, http.StatusBadRequest},
		{"illegal transition", lib.ErrIllegalTransition, http.StatusBadRequest},
		{"invalid status", lib.ErrInvalidStatus, http.StatusBadRequest},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondServiceError(rec, logger, tt.err, "error.test")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func jsonEOF() error {
	var v struct{}
	return json.NewDecoder(strings.NewReader("")).Decode(&v)
}
