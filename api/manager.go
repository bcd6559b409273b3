package api

import (
	"lumina_server/api/admin"
	"lumina_server/api/auth"
	"lumina_server/api/collections"
	"lumina_server/api/contact"
	"lumina_server/api/health"
	"lumina_server/api/middleware"
	"lumina_server/api/orders"
	"lumina_server/api/products"
	"lumina_server/api/quotes"
	"lumina_server/api/slides"
	"lumina_server/services"
	"lumina_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// RouterManager aggregates the per-resource route managers.
type RouterManager struct {
	logger   *gecho.Logger
	cfg      *structs.Config
	services *services.ServiceManager
	mw       *middleware.Middleware
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *RouterManager {
	return &RouterManager{
		logger:   logger,
		cfg:      cfg,
		services: sm,
		mw:       mw,
	}
}

// RegisterRoutes mounts operational endpoints at the root and the storefront
// and back-office endpoints under /api. Admin routes sit behind bearer auth.
func (rm *RouterManager) RegisterRoutes(r chi.Router) {
	health.NewHealthRoutesManager(rm.services.HealthService).RegisterRoutes(r)

	r.Route("/api", func(r chi.Router) {
		products.NewProductRoutesManager(rm.logger, rm.services.ProductService).RegisterRoutes(r)
		collections.NewCollectionRoutesManager(rm.logger, rm.services.CollectionService).RegisterRoutes(r)
		slides.NewSlideRoutesManager(rm.logger, rm.services.SlideService).RegisterRoutes(r)
		orders.NewOrderRoutesManager(rm.logger, rm.services.OrderService).RegisterRoutes(r)
		quotes.NewQuoteRoutesManager(rm.logger, rm.services.LeadService).RegisterRoutes(r)
		contact.NewContactRoutesManager(rm.logger, rm.services.LeadService).RegisterRoutes(r)
		auth.NewAuthRoutesManager(rm.logger, rm.services.AuthService).RegisterRoutes(r)

		r.Route("/admin", func(r chi.Router) {
			r.Use(rm.mw.AdminAuthMiddleware)
			admin.NewAdminRoutesManager(rm.logger, rm.cfg, rm.services).RegisterRoutes(r)
		})
	})
}
