package repository

import (
	"context"
	"strings"

	"github.com/orderfood/storefront-api/internal/models"
)

// InMemoryProductRepository implements ProductRepository with slice-backed
// storage in insertion order. It mirrors the document store's substring
// search semantics and is used by handler and service tests.
type InMemoryProductRepository struct {
	products []models.Product
	limit    int
}

// NewInMemoryProductRepository creates an empty in-memory product repository.
func NewInMemoryProductRepository(limit int) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make([]models.Product, 0),
		limit:    limit,
	}
}

func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.collect(func(models.Product) bool { return true }), nil
}

func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			p := product
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.collect(func(p models.Product) bool { return p.Category == category }), nil
}

func (r *InMemoryProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	needle := strings.ToLower(query)
	return r.collect(func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle)
	}), nil
}

func (r *InMemoryProductRepository) Insert(ctx context.Context, product models.Product) error {
	r.products = append(r.products, product)
	return nil
}

func (r *InMemoryProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	r.products = append(r.products, products...)
	return nil
}

func (r *InMemoryProductRepository) Any(ctx context.Context) (bool, error) {
	return len(r.products) > 0, nil
}

func (r *InMemoryProductRepository) collect(match func(models.Product) bool) []models.Product {
	result := make([]models.Product, 0)
	for _, product := range r.products {
		if len(result) >= r.limit {
			break
		}
		if match(product) {
			result = append(result, product)
		}
	}
	return result
}

// InMemoryOrderRepository implements OrderRepository for tests.
type InMemoryOrderRepository struct {
	orders []models.Order
	limit  int
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository(limit int) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make([]models.Order, 0),
		limit:  limit,
	}
}

func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	result := make([]models.Order, 0)
	for _, order := range r.orders {
		if len(result) >= r.limit {
			break
		}
		result = append(result, order)
	}
	return result, nil
}

func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	for _, order := range r.orders {
		if order.ID == id {
			o := order
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Insert(ctx context.Context, order models.Order) error {
	r.orders = append(r.orders, order)
	return nil
}
