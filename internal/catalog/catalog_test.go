package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *MemoryCatalog {
	return NewMemoryCatalog([]Product{
		{ID: "1", Name: "Headphones", Description: "wireless audio", Category: "Electronics", Price: 299.99, Rating: 4.8},
		{ID: "2", Name: "Fitness Watch", Description: "GPS tracking", Category: "Electronics", Price: 199.99, Rating: 4.6},
		{ID: "3", Name: "Cotton T-Shirt", Description: "organic cotton", Category: "Clothing", Price: 29.99, Rating: 4.4},
	})
}

func TestGet(t *testing.T) {
	c := testCatalog()

	p, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Fitness Watch", p.Name)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"Electronics", "Clothing"}, c.Categories())
}

func TestList_Filters(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"no filter sorts by name", Filter{}, []string{"3", "2", "1"}},
		{"category", Filter{Category: "Clothing"}, []string{"3"}},
		{"query matches name", Filter{Query: "watch"}, []string{"2"}},
		{"query matches description", Filter{Query: "organic"}, []string{"3"}},
		{"price range", Filter{MinPrice: 100, MaxPrice: 250}, []string{"2"}},
		{"price-low sort", Filter{SortBy: "price-low"}, []string{"3", "2", "1"}},
		{"price-high sort", Filter{SortBy: "price-high"}, []string{"1", "2", "3"}},
		{"rating sort", Filter{SortBy: "rating"}, []string{"1", "2", "3"}},
		{"newest sort", Filter{SortBy: "newest"}, []string{"3", "2", "1"}},
		{"no match", Filter{Query: "nonexistent"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotIDs []string
			for _, p := range c.List(tt.filter) {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSeedProducts(t *testing.T) {
	products := SeedProducts()
	require.NotEmpty(t, products)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
		assert.Positive(t, p.Price)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
}
