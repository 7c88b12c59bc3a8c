package catalog

import (
	"context"
	"errors"
	"log"

	"github.com/wirix/market-sfu/models"
)

// Sort is the product list ordering requested by the storefront.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

// ParseSort maps a query-string value onto a Sort. Unknown or empty
// values fall back to newest-first, matching the storefront default.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortOldest, SortPriceAsc, SortPriceDesc:
		return Sort(s)
	default:
		return SortNewest
	}
}

// ErrNotFound is returned by Get when no product has the given id.
var ErrNotFound = errors.New("product not found")

// Repository is the catalog record store.
type Repository interface {
	List(ctx context.Context, category string, sort Sort) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
}

// Service answers catalog queries. Listing degrades to the built-in
// fallback dataset when the repository fails or comes back empty, so
// browsing keeps working while the database is down or unseeded.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns products filtered by category ("" or "all" means every
// category) in the requested order. Never returns an empty catalog.
func (s *Service) List(ctx context.Context, category string, sort Sort) []models.Product {
	products, err := s.repo.List(ctx, category, sort)
	if err != nil {
		log.Printf("❌ Error fetching products: %v", err)
		log.Println("📦 Using fallback products due to error")
		return filterFallback(category, sort)
	}
	if len(products) == 0 {
		log.Println("📦 Using fallback products data")
		return filterFallback(category, sort)
	}
	return products
}

// Get looks up a single product. ErrNotFound is a normal outcome, not a
// server error.
func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.Get(ctx, id)
}
