package admin

import (
	"fmt"
	"lumina_server/services"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminRoutesManager groups the back-office routes. The caller mounts it
// behind the admin auth middleware.
type AdminRoutesManager struct {
	logger            *gecho.Logger
	cfg               *structs.Config
	productService    *services.ProductService
	collectionService *services.CollectionService
	slideService      *services.SlideService
	orderService      *services.OrderService
	leadService       *services.LeadService
	uploadService     *services.UploadService
	emailService      *services.EmailService
}

func NewAdminRoutesManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:            logger,
		cfg:               cfg,
		productService:    sm.ProductService,
		collectionService: sm.CollectionService,
		slideService:      sm.SlideService,
		orderService:      sm.OrderService,
		leadService:       sm.LeadService,
		uploadService:     sm.UploadService,
		emailService:      sm.EmailService,
	}
}

func (a *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", a.CreateProduct)
		r.Put("/{id}", a.UpdateProduct)
		r.Delete("/{id}", a.DeleteProduct)
	})

	r.Route("/collections", func(r chi.Router) {
		r.Post("/", a.CreateCollection)
		r.Put("/{id}", a.UpdateCollection)
		r.Delete("/{id}", a.DeleteCollection)
	})

	r.Route("/slides", func(r chi.Router) {
		r.Post("/", a.CreateSlide)
		r.Post("/reorder", a.ReorderSlides)
		r.Put("/{id}", a.UpdateSlide)
		r.Delete("/{id}", a.DeleteSlide)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", a.ListOrders)
		r.Get("/search", a.SearchOrders)
		r.Get("/{id}", a.FetchOrder)
		r.Put("/{id}", a.ReplaceOrder)
		r.Put("/{id}/status", a.UpdateOrderStatus)
		r.Delete("/{id}", a.DeleteOrder)
	})

	r.Route("/quotes", func(r chi.Router) {
		r.Get("/", a.ListQuotes)
		r.Put("/{id}/status", a.UpdateQuoteStatus)
		r.Delete("/{id}", a.DeleteQuote)
	})

	r.Route("/contact", func(r chi.Router) {
		r.Get("/", a.ListContactMessages)
		r.Put("/{id}/read", a.MarkContactMessageRead)
	})

	r.Post("/upload", a.Upload)
	r.Post("/email/send", a.SendEmail)
}

// idParam parses the {id} route parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func respondInvalidID(w http.ResponseWriter, err error) {
	gecho.BadRequest(w,
		gecho.WithMessage("error.invalidId"),
		gecho.WithData(err.Error()),
		gecho.Send(),
	)
}
