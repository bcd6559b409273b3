package services

import (
	"context"
	"lumina_server/database"
	"lumina_server/lib"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CollectionService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCollectionService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CollectionService {
	return &CollectionService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetCollections returns all collections ordered by name.
func (cs *CollectionService) GetCollections(ctx context.Context) ([]tables.Collection, error) {
	cached, err := cs.cacheService.GetCollections()
	if err != nil {
		cs.logger.Warn("Failed to read collections from cache", gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	collections, err := database.Query[tables.Collection](cs.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.cacheService.SetCollections(collections)
	return collections, nil
}

// GetCollectionByIdOrSlug retrieves a collection with its products.
func (cs *CollectionService) GetCollectionByIdOrSlug(ctx context.Context, key string) (*tables.Collection, error) {
	query := database.Query[tables.Collection](cs.db).
		Relation("Products").
		Relation("Products.Images")

	if id, parseErr := uuid.Parse(key); parseErr == nil {
		query = query.Where("id", id)
	} else {
		query = query.Where("slug", key)
	}

	collection, err := query.First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if collection == nil {
		return nil, lib.ErrNotFound
	}
	return collection, nil
}

// CreateCollection inserts a new collection. The slug is derived from the name
// when not supplied.
func (cs *CollectionService) CreateCollection(ctx context.Context, req *structs.CollectionRequest) (*tables.Collection, error) {
	now := time.Now()
	collection := &tables.Collection{
		ID:          uuid.New(),
		Slug:        collectionSlug(req),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := database.Create(cs.db, ctx, collection); err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.cacheService.InvalidateCatalog()
	return collection, nil
}

// UpdateCollection replaces a collection's fields.
func (cs *CollectionService) UpdateCollection(ctx context.Context, id uuid.UUID, req *structs.CollectionRequest) (*tables.Collection, error) {
	updated, err := database.UpdateByID[tables.Collection](cs.db, ctx, id, map[string]any{
		"name":        req.Name,
		"slug":        collectionSlug(req),
		"description": req.Description,
		"image_url":   req.ImageURL,
		"updated_at":  time.Now(),
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if updated == 0 {
		return nil, lib.ErrNotFound
	}

	cs.cacheService.InvalidateCatalog()
	return database.FindByID[tables.Collection](cs.db, ctx, id)
}

// DeleteCollection removes a collection. Deletion is refused while any product
// still references the collection; products must be reassigned or deleted
// first.
func (cs *CollectionService) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	inUse, err := database.Query[tables.Product](cs.db).
		Where("collection_id", id).
		Exists(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if inUse {
		return lib.ErrConflict
	}

	deleted, err := database.DeleteByID[tables.Collection](cs.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}

	cs.cacheService.InvalidateCatalog()
	return nil
}

func collectionSlug(req *structs.CollectionRequest) string {
	if req.Slug != "" {
		return lib.Slugify(req.Slug)
	}
	return lib.Slugify(req.Name)
}
