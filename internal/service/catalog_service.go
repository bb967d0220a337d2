package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/orderfood/storefront-api/internal/models"
	"github.com/orderfood/storefront-api/internal/repository"
	"github.com/orderfood/storefront-api/internal/seed"
)

// CatalogService handles business logic for the product catalog.
type CatalogService struct {
	repo repository.ProductRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts returns all products in the catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProductsByCategory returns all products in the given category.
// Category matching is exact and case-sensitive; no matches yields an empty
// slice, not an error.
func (s *CatalogService) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.repo.GetByCategory(ctx, category)
}

// SearchProducts returns all products matching query as a case-insensitive
// substring of name, description or category. An empty query matches every
// product.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	return s.repo.Search(ctx, query)
}

// CreateProduct assigns an id and creation timestamp, persists the product
// and returns the stored document. in_stock defaults to true when omitted.
func (s *CatalogService) CreateProduct(ctx context.Context, req models.ProductCreate) (*models.Product, error) {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		Category:    *req.Category,
		ImageURL:    *req.ImageURL,
		InStock:     inStock,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SeedSampleData inserts the fixed sample catalog unless any product already
// exists. It reports whether a write was performed. The guard is a
// convention, not a transaction: two concurrent calls against an empty
// collection may both insert.
func (s *CatalogService) SeedSampleData(ctx context.Context) (bool, error) {
	exists, err := s.repo.Any(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if err := s.repo.InsertMany(ctx, seed.Products()); err != nil {
		return false, err
	}
	return true, nil
}
