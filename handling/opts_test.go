package handling

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptions(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/products", nil)

		opts, err := ParseProductListOptions(r)
		require.NoError(t, err)
		assert.Zero(t, opts.Page)
		assert.Empty(t, opts.SearchTerm)
		assert.Nil(t, opts.CollectionID)
	})

	t.Run("full query", func(t *testing.T) {
		id := uuid.New()
		r := httptest.NewRequest("GET",
			"/api/products?page=2&page_size=12&collection="+id.String()+
				"&category=suspension&search=halo&sort_by=name&sort_direction=asc", nil)

		opts, err := ParseProductListOptions(r)
		require.NoError(t, err)
		assert.Equal(t, 2, opts.Page)
		assert.Equal(t, 12, opts.PageSize)
		require.NotNil(t, opts.CollectionID)
		assert.Equal(t, id, *opts.CollectionID)
		assert.Equal(t, "suspension", opts.Category)
		assert.Equal(t, "halo", opts.SearchTerm)
		assert.Equal(t, "name", opts.SortBy)
		assert.Equal(t, "ASC", opts.SortDirection)
	})

	t.Run("invalid page", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/products?page=two", nil)
		_, err := ParseProductListOptions(r)
		assert.Error(t, err)
	})

	t.Run("invalid collection id", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/products?collection=not-a-uuid", nil)
		_, err := ParseProductListOptions(r)
		assert.Error(t, err)
	})
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "?page=3&page_size=50", 3, 50},
		{"zero page clamps", "?page=0", 1, 20},
		{"negative page clamps", "?page=-4", 1, 20},
		{"oversized page size clamps", "?page_size=5000", 1, 20},
		{"garbage ignored", "?page=abc&page_size=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/admin/orders"+tt.query, nil)
			page, pageSize := ParsePagination(r)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.pageSize, pageSize)
		})
	}
}
