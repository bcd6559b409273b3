package services

import (
	"context"
	"fmt"
	"lumina_server/database"
	"lumina_server/lib"
	"lumina_server/structs"
	"lumina_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for catalog queries.
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	CollectionID *uuid.UUID `json:"collection_id,omitempty"`
	Category     string     `json:"category,omitempty"`
	SearchTerm   string     `json:"search_term,omitempty"` // matches name and description

	// Sorting
	SortBy        string `json:"sort_by"`        // created_at or name
	SortDirection string `json:"sort_direction"` // ASC or DESC
}

// ProductListResult wraps the product list response with metadata.
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	QueryTime  time.Duration       `json:"query_time"`
}

// GetAllProducts retrieves catalog products with filtering and pagination.
func (ps *ProductService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
	if opts.SortBy != "created_at" && opts.SortBy != "name" {
		return nil, fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}
	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return nil, fmt.Errorf("invalid sort direction: %s", opts.SortDirection)
	}

	query := database.Query[tables.Product](ps.db).
		Relation("Images").
		OrderBy(opts.SortBy, database.OrderDirection(opts.SortDirection))

	if opts.CollectionID != nil {
		query = query.Where("collection_id", *opts.CollectionID)
	}
	if opts.Category != "" {
		query = query.Where("category", opts.Category)
	}
	if opts.SearchTerm != "" {
		query = query.WhereAnyILike("%"+opts.SearchTerm+"%", "name", "description")
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		QueryTime:  time.Since(startTime),
	}, nil
}

// GetProductByIdOrSlug retrieves a single product. The key is tried as a UUID
// first, then as a slug; the two are interchangeable for lookups.
func (ps *ProductService) GetProductByIdOrSlug(ctx context.Context, key string) (*tables.Product, error) {
	// Try the cache first
	cached, err := ps.cacheService.GetProduct(key)
	if err != nil {
		ps.logger.Warn("Failed to read product from cache", gecho.Field("error", err), gecho.Field("key", key))
	} else if cached != nil {
		return cached, nil
	}

	query := database.Query[tables.Product](ps.db).
		Relation("Images").
		Relation("Specs").
		Timeout(5 * time.Second)

	if id, parseErr := uuid.Parse(key); parseErr == nil {
		query = query.Where("id", id)
	} else {
		query = query.Where("slug", key)
	}

	product, err := query.First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	ps.cacheService.SetProduct(product)
	return product, nil
}

// CreateProduct inserts a product with its images and specifications in one
// transaction. The slug is derived from the name when not supplied; the
// database unique constraint is the arbiter of slug collisions.
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.ProductRequest) (*tables.Product, error) {
	now := time.Now()
	product := &tables.Product{
		ID:           uuid.New(),
		Slug:         productSlug(req),
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		PdfURL:       req.PdfURL,
		CollectionID: req.CollectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	images, specs := buildProductChildren(product.ID, req)

	err := ps.db.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(product).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		if len(images) > 0 {
			if _, err := tx.NewInsert().Model(&images).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}
		if len(specs) > 0 {
			if _, err := tx.NewInsert().Model(&specs).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	product.Images = images
	product.Specs = specs
	ps.cacheService.InvalidateCatalog()

	return product, nil
}

// UpdateProduct replaces a product's fields, images and specifications.
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	existing, err := database.Query[tables.Product](ps.db).Where("id", id).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if existing == nil {
		return nil, lib.ErrNotFound
	}

	images, specs := buildProductChildren(id, req)

	err = ps.db.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().
			Model((*tables.Product)(nil)).
			Set("name = ?", req.Name).
			Set("slug = ?", productSlug(req)).
			Set("description = ?", req.Description).
			Set("category = ?", req.Category).
			Set("pdf_url = ?", req.PdfURL).
			Set("collection_id = ?", req.CollectionID).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewDelete().Model((*tables.ProductImage)(nil)).Where("product_id = ?", id).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		if _, err := tx.NewDelete().Model((*tables.ProductSpec)(nil)).Where("product_id = ?", id).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if len(images) > 0 {
			if _, err := tx.NewInsert().Model(&images).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}
		if len(specs) > 0 {
			if _, err := tx.NewInsert().Model(&specs).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ps.cacheService.InvalidateCatalog()
	return ps.GetProductByIdOrSlug(ctx, id.String())
}

// DeleteProduct removes a product and cascades to its images and specifications.
func (ps *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	var deleted int64

	err := ps.db.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*tables.ProductImage)(nil)).Where("product_id = ?", id).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		if _, err := tx.NewDelete().Model((*tables.ProductSpec)(nil)).Where("product_id = ?", id).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		res, err := tx.NewDelete().Model((*tables.Product)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return err
	}

	if deleted == 0 {
		return lib.ErrNotFound
	}

	ps.cacheService.InvalidateCatalog()
	return nil
}

func productSlug(req *structs.ProductRequest) string {
	if req.Slug != "" {
		return lib.Slugify(req.Slug)
	}
	return lib.Slugify(req.Name)
}

func buildProductChildren(productID uuid.UUID, req *structs.ProductRequest) ([]tables.ProductImage, []tables.ProductSpec) {
	images := make([]tables.ProductImage, 0, len(req.Images))
	for i, img := range req.Images {
		images = append(images, tables.ProductImage{
			ID:        uuid.New(),
			ProductID: productID,
			URL:       img.URL,
			Alt:       img.Alt,
			Position:  i,
		})
	}

	specs := make([]tables.ProductSpec, 0, len(req.Specs))
	for i, spec := range req.Specs {
		specs = append(specs, tables.ProductSpec{
			ID:        uuid.New(),
			ProductID: productID,
			Label:     spec.Label,
			Value:     spec.Value,
			Position:  i,
		})
	}

	return images, specs
}
