package orders

import (
	"lumina_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService *services.OrderService) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
	}
}

func (o *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/checkout", o.Checkout)
	r.Get("/orders/track/{code}", o.TrackOrder)
}
