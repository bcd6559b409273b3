package admin

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateProduct handles POST /admin/products.
func (a *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.products.invalidPayload")
		return
	}

	product, err := a.productService.CreateProduct(r.Context(), req)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.products.failedToCreate")
		return
	}

	a.logger.Info("Product created", gecho.Field("id", product.ID), gecho.Field("slug", product.Slug))
	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

// UpdateProduct handles PUT /admin/products/{id}.
func (a *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.products.invalidPayload")
		return
	}

	product, err := a.productService.UpdateProduct(r.Context(), id, req)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.products.failedToUpdate")
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /admin/products/{id}.
func (a *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := a.productService.DeleteProduct(r.Context(), id); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.products.failedToDelete")
		return
	}

	a.logger.Info("Product deleted", gecho.Field("id", id))
	gecho.Success(w,
		gecho.WithMessage("products.deleted"),
		gecho.Send(),
	)
}
