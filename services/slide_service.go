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
	"github.com/uptrace/bun"
)

type SlideService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewSlideService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *SlideService {
	return &SlideService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetSlides returns all hero slides in display order.
func (ss *SlideService) GetSlides(ctx context.Context) ([]tables.HeroSlide, error) {
	cached, err := ss.cacheService.GetSlides()
	if err != nil {
		ss.logger.Warn("Failed to read slides from cache", gecho.Field("error", err))
	} else if cached != nil {
		return cached, nil
	}

	slides, err := database.Query[tables.HeroSlide](ss.db).
		OrderBy("position", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ss.cacheService.SetSlides(slides)
	return slides, nil
}

// CreateSlide inserts a slide. When no position is supplied the slide is
// appended after the current last one.
func (ss *SlideService) CreateSlide(ctx context.Context, req *structs.SlideRequest) (*tables.HeroSlide, error) {
	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		count, err := database.Query[tables.HeroSlide](ss.db).Count(ctx)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		position = count
	}

	now := time.Now()
	slide := &tables.HeroSlide{
		ID:          uuid.New(),
		ImageURL:    req.ImageURL,
		Alt:         req.Alt,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		ButtonLabel: req.ButtonLabel,
		ButtonURL:   req.ButtonURL,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := database.Create(ss.db, ctx, slide); err != nil {
		return nil, lib.MapPgError(err)
	}

	ss.cacheService.InvalidateCatalog()
	return slide, nil
}

// UpdateSlide replaces a slide's content.
func (ss *SlideService) UpdateSlide(ctx context.Context, id uuid.UUID, req *structs.SlideRequest) (*tables.HeroSlide, error) {
	columns := map[string]any{
		"image_url":    req.ImageURL,
		"alt":          req.Alt,
		"title":        req.Title,
		"subtitle":     req.Subtitle,
		"button_label": req.ButtonLabel,
		"button_url":   req.ButtonURL,
		"updated_at":   time.Now(),
	}
	if req.Position != nil {
		columns["position"] = *req.Position
	}

	updated, err := database.UpdateByID[tables.HeroSlide](ss.db, ctx, id, columns)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if updated == 0 {
		return nil, lib.ErrNotFound
	}

	ss.cacheService.InvalidateCatalog()
	return database.FindByID[tables.HeroSlide](ss.db, ctx, id)
}

// DeleteSlide removes a slide.
func (ss *SlideService) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	deleted, err := database.DeleteByID[tables.HeroSlide](ss.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}

	ss.cacheService.InvalidateCatalog()
	return nil
}

// ReorderSlides swaps the positions of two slides in a single transaction.
func (ss *SlideService) ReorderSlides(ctx context.Context, a, b uuid.UUID) error {
	slideA, err := database.FindByID[tables.HeroSlide](ss.db, ctx, a)
	if err != nil {
		return lib.MapPgError(err)
	}
	slideB, err := database.FindByID[tables.HeroSlide](ss.db, ctx, b)
	if err != nil {
		return lib.MapPgError(err)
	}
	if slideA == nil || slideB == nil {
		return lib.ErrNotFound
	}

	err = ss.db.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()
		if _, err := tx.NewUpdate().
			Model((*tables.HeroSlide)(nil)).
			Set("position = ?", slideB.Position).
			Set("updated_at = ?", now).
			Where("id = ?", a).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		if _, err := tx.NewUpdate().
			Model((*tables.HeroSlide)(nil)).
			Set("position = ?", slideA.Position).
			Set("updated_at = ?", now).
			Where("id = ?", b).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	ss.cacheService.InvalidateCatalog()
	return nil
}
