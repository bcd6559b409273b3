package collections

import (
	"lumina_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchAllCollections handles GET /collections.
func (c *CollectionRoutesManager) FetchAllCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := c.collectionService.GetCollections(r.Context())
	if err != nil {
		handling.RespondServiceError(w, c.logger, err, "error.collections.failedToFetch")
		return
	}

	gecho.Success(w,
		gecho.WithData(collections),
		gecho.Send(),
	)
}

// FetchCollection handles GET /collections/{key} where key is an id or a slug.
// The collection's products are included.
func (c *CollectionRoutesManager) FetchCollection(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	collection, err := c.collectionService.GetCollectionByIdOrSlug(r.Context(), key)
	if err != nil {
		handling.RespondServiceError(w, c.logger, err, "error.collections.notFound")
		return
	}

	gecho.Success(w,
		gecho.WithData(collection),
		gecho.Send(),
	)
}
