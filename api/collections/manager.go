package collections

import (
	"lumina_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CollectionRoutesManager struct {
	logger            *gecho.Logger
	collectionService *services.CollectionService
}

func NewCollectionRoutesManager(logger *gecho.Logger, collectionService *services.CollectionService) *CollectionRoutesManager {
	return &CollectionRoutesManager{
		logger:            logger,
		collectionService: collectionService,
	}
}

func (c *CollectionRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/collections", func(r chi.Router) {
		r.Get("/", c.FetchAllCollections)
		r.Get("/{key}", c.FetchCollection)
	})
}
