package handling

import (
	"lumina_server/services"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions.
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}

	if page := query.Get("page"); page != "" {
		valInt, err := strconv.Atoi(page)
		if err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		valInt, err := strconv.Atoi(pageSize)
		if err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if collection := query.Get("collection"); collection != "" {
		id, err := uuid.Parse(collection)
		if err != nil {
			return nil, err
		}
		opts.CollectionID = &id
	}

	if category := query.Get("category"); category != "" {
		opts.Category = category
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}

// ParsePagination parses page/page_size query parameters with defaults.
func ParsePagination(r *http.Request) (page, pageSize int) {
	query := r.URL.Query()

	page, _ = strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(query.Get("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return page, pageSize
}
