package repository

import (
	"context"
	"errors"

	"github.com/orderfood/storefront-api/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ProductRepository defines the interface for product data access.
// List-returning methods cap their result at the repository's configured
// limit and return documents in the store's natural order.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Insert(ctx context.Context, product models.Product) error
	InsertMany(ctx context.Context, products []models.Product) error
	Any(ctx context.Context) (bool, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Insert(ctx context.Context, order models.Order) error
}
