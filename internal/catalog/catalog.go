package catalog

import (
	"sort"
	"strings"
)

// Product is an immutable catalog record. The cart and checkout layers
// treat it as read-only; stock is advisory display data, not a reservation.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// Filter narrows and orders a product listing.
type Filter struct {
	Query    string
	Category string
	MinPrice float64
	MaxPrice float64
	SortBy   string // name, price-low, price-high, rating, newest
}

// Catalog is the read-only product collaborator consumed by the shop surface.
type Catalog interface {
	List(f Filter) []Product
	Get(id string) (Product, bool)
	Categories() []string
}

// MemoryCatalog serves a fixed product list from memory.
type MemoryCatalog struct {
	products []Product
	byID     map[string]Product
}

func NewMemoryCatalog(products []Product) *MemoryCatalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &MemoryCatalog{products: products, byID: byID}
}

func (c *MemoryCatalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *MemoryCatalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

func (c *MemoryCatalog) List(f Filter) []Product {
	query := strings.ToLower(f.Query)

	var result []Product
	for _, p := range c.products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch f.SortBy {
		case "price-low":
			return a.Price < b.Price
		case "price-high":
			return a.Price > b.Price
		case "rating":
			return a.Rating > b.Rating
		case "newest":
			return a.ID > b.ID
		default:
			return a.Name < b.Name
		}
	})

	return result
}
