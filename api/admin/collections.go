package admin

import (
	"lumina_server/handling"
	"lumina_server/lib"
	"lumina_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// CreateCollection handles POST /admin/collections.
func (a *AdminRoutesManager) CreateCollection(w http.ResponseWriter, r *http.Request) {
	req, err := lib.ExtractAndValidateBody[structs.CollectionRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.collections.invalidPayload")
		return
	}

	collection, err := a.collectionService.CreateCollection(r.Context(), req)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.collections.failedToCreate")
		return
	}

	a.logger.Info("Collection created", gecho.Field("id", collection.ID), gecho.Field("slug", collection.Slug))
	gecho.Success(w,
		gecho.WithData(collection),
		gecho.Send(),
	)
}

// UpdateCollection handles PUT /admin/collections/{id}.
func (a *AdminRoutesManager) UpdateCollection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.CollectionRequest](r)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.collections.invalidPayload")
		return
	}

	collection, err := a.collectionService.UpdateCollection(r.Context(), id, req)
	if err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.collections.failedToUpdate")
		return
	}

	gecho.Success(w,
		gecho.WithData(collection),
		gecho.Send(),
	)
}

// DeleteCollection handles DELETE /admin/collections/{id}. Collections that
// still have products attached are refused.
func (a *AdminRoutesManager) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondInvalidID(w, err)
		return
	}

	if err := a.collectionService.DeleteCollection(r.Context(), id); err != nil {
		handling.RespondServiceError(w, a.logger, err, "error.collections.failedToDelete")
		return
	}

	a.logger.Info("Collection deleted", gecho.Field("id", id))
	gecho.Success(w,
		gecho.WithMessage("collections.deleted"),
		gecho.Send(),
	)
}
