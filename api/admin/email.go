package admin

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// SendEmail handles POST /admin/email/send for ad-hoc back-office emails.
func (a *AdminRoutesManager) SendEmail(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.SendEmailRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.email.invalidPayload")
		return
	}

	if err := a.emailService.SendEmail(req.To, req.Subject, req.Html); err != nil {
		a.logger.Error("Failed to send email",
			gecho.Field("error", err),
			gecho.Field("to", req.To),
			gecho.Field("subject", req.Subject))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.email.failedToSend"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("email.sent"),
		gecho.Send(),
	)
}
