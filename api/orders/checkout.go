package orders

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// Checkout handles POST /checkout. It validates the cart payload, persists
// the order and returns the tracking code the customer can follow up with.
func (o *OrderRoutesManager) Checkout(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.CheckoutRequest](r)
	if err != nil {
		o.logger.Warn("Invalid checkout payload", gecho.Field("error", err))
		handling.RespondServiceError(w, o.logger, err, "error.checkout.invalidPayload")
		return
	}

	order, err := o.orderService.CreateOrderFromCheckout(r.Context(), req)
	if err != nil {
		handling.RespondServiceError(w, o.logger, err, "error.checkout.failed")
		return
	}

	o.logger.Info("Order placed",
		gecho.Field("panierCode", order.OrderNumber),
		gecho.Field("email", order.Email),
		gecho.Field("total", order.Total))

	gecho.Success(w,
		gecho.WithMessage("order.placed"),
		gecho.WithData(structs.CheckoutResponse{
			Success:    true,
			PanierCode: order.OrderNumber,
			Message:    "Commande enregistrée. Conservez votre code de suivi.",
		}),
		gecho.Send(),
	)
}

// TrackOrder handles GET /orders/track/{code}. Lookup is case-insensitive.
func (o *OrderRoutesManager) TrackOrder(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	order, err := o.orderService.GetOrderByCode(r.Context(), code)
	if err != nil {
		handling.RespondServiceError(w, o.logger, err, "error.orders.notFound")
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}
