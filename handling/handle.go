package handling

import (
	"encoding/json"
	"errors"
	"io"
	"lumina_server/lib"
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// RespondServiceError maps service-layer errors onto the three response tiers:
// validation/conflict problems become 400 with detail, missing records become
// 404, everything else is logged and returned as an opaque 500.
func RespondServiceError(w http.ResponseWriter, logger *gecho.Logger, err error, msg string) {
	var ve *lib.ValidationError
	switch {
	case errors.As(err, &ve):
		gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(ve),
			gecho.Send(),
		)
	case isBodyDecodeError(err):
		gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w,
			gecho.WithMessage(msg),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrConflict),
		errors.Is(err, lib.ErrInvalidStatus),
		errors.Is(err, lib.ErrIllegalTransition):
		gecho.BadRequest(w,
			gecho.WithMessage(msg),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
	default:
		logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg))
		gecho.InternalServerError(w,
			gecho.WithMessage(msg),
			gecho.Send(),
		)
	}
}

// isBodyDecodeError recognizes the failure modes of decoding a JSON request
// body: malformed or truncated JSON, wrong field types, empty bodies, bodies
// over the request size limit, and unknown fields (DisallowUnknownFields
// surfaces those as plain errors).
func isBodyDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &maxBytesErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		strings.HasPrefix(err.Error(), "json: unknown field")
}
