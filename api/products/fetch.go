package products

import (
	"lumina_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllProducts handles GET /products with filtering, pagination and sorting.
func (p *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		p.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := p.productService.GetAllProducts(ctx, opts)
	if err != nil {
		handling.RespondServiceError(w, p.logger, err, "error.products.failedToFetch")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"meta": map[string]any{
				"query_time_ms": result.QueryTime.Milliseconds(),
				"count":         len(result.Products),
			},
		}),
		gecho.Send(),
	)
}

// FetchProduct handles GET /products/{key} where key is an id or a slug.
func (p *ProductRoutesManager) FetchProduct(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	product, err := p.productService.GetProductByIdOrSlug(r.Context(), key)
	if err != nil {
		handling.RespondServiceError(w, p.logger, err, "error.products.notFound")
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
