package admin

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"net/http"
	"strings"

	"github.com/MonkyMars/gecho"
)

// ListOrders handles GET /admin/orders with optional ?status= filtering.
// French status aliases from the back-office UI are accepted.
func (a *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, pageSize := handling.ParsePagination(r)

	var status *tables.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := tables.ParseOrderStatus(raw)
		if !ok {
			gecho.BadRequest(w,
				gecho.WithMessage("error.orders.invalidStatus"),
				gecho.WithData(raw),
				gecho.Send(),
			)
			return
		}
		status = &parsed
	}

	result, err := a.orderService.ListOrders(r.Context(), status, page, pageSize)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.failedToFetch")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders":     result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// SearchOrders handles GET /admin/orders/search?q=. The term is matched
// case-insensitively against the tracking code, customer name, email and phone.
func (a *AdminRoutesManager) SearchOrders(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.missingSearchTerm"),
			gecho.Send(),
		)
		return
	}

	orders, err := a.orderService.SearchOrders(r.Context(), term)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.failedToSearch")
		return
	}

	gecho.Success(w,
		gecho.WithData(orders),
		gecho.Send(),
	)
}

// FetchOrder handles GET /admin/orders/{id}.
func (a *AdminRoutesManager) FetchOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	order, err := a.orderService.GetOrderById(r.Context(), id)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.notFound")
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// ReplaceOrder handles PUT /admin/orders/{id}. The customer snapshot and line
// items are replaced wholesale and the total is recomputed.
func (a *AdminRoutesManager) ReplaceOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.OrderUpdateRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.invalidPayload")
		return
	}

	order, err := a.orderService.ReplaceOrder(r.Context(), id, req)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.failedToUpdate")
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// UpdateOrderStatus handles PUT /admin/orders/{id}/status. Transitions are
// guarded: delivered and cancelled orders are terminal, and orders only move
// forward through the fulfilment flow.
func (a *AdminRoutesManager) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.OrderStatusRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.invalidPayload")
		return
	}

	next, ok := tables.ParseOrderStatus(req.Status)
	if !ok {
		gecho.BadRequest(w,
			gecho.WithMessage("error.orders.invalidStatus"),
			gecho.WithData(req.Status),
			gecho.Send(),
		)
		return
	}

	order, err := a.orderService.UpdateOrderStatus(r.Context(), id, next)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.failedToUpdateStatus")
		return
	}

	a.logger.Info("Order status updated",
		gecho.Field("id", id),
		gecho.Field("status", order.Status))

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}

// DeleteOrder handles DELETE /admin/orders/{id}.
func (a *AdminRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := a.orderService.DeleteOrder(r.Context(), id); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.orders.failedToDelete")
		return
	}

	a.logger.Info("Order deleted", gecho.Field("id", id))
	gecho.Success(w,
		gecho.WithMessage("orders.deleted"),
		gecho.Send(),
	)
}
