package services

import (
	"lumina_server/database"
	"lumina_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService       *AuthService
	EmailService      *EmailService
	CacheService      *CacheService
	HealthService     *HealthService
	ProductService    *ProductService
	CollectionService *CollectionService
	SlideService      *SlideService
	OrderService      *OrderService
	LeadService       *LeadService
	UploadService     *UploadService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	authService := NewAuthService(logger, cfg, db)
	healthService := NewHealthService(logger, db)
	productService := NewProductService(logger, db, cacheService)
	collectionService := NewCollectionService(logger, db, cacheService)
	slideService := NewSlideService(logger, db, cacheService)
	orderService := NewOrderService(logger, cfg, db, emailService)
	leadService := NewLeadService(logger, db, emailService)
	uploadService := NewUploadService(logger, cfg)

	return &ServiceManager{
		AuthService:       authService,
		EmailService:      emailService,
		CacheService:      cacheService,
		HealthService:     healthService,
		ProductService:    productService,
		CollectionService: collectionService,
		SlideService:      slideService,
		OrderService:      orderService,
		LeadService:       leadService,
		UploadService:     uploadService,
	}
}
