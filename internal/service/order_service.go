package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/orderfood/storefront-api/internal/models"
	"github.com/orderfood/storefront-api/internal/repository"
)

// OrderService handles order business logic.
//
// Orders are deliberately lenient: items may be empty, total_amount is taken
// as submitted without being recomputed, and product_id values are not
// checked against the catalog. The item fields are denormalized snapshots
// supplied by the client.
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// CreateOrder assigns an id, pending status and creation timestamp, persists
// the order and returns the stored document.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderCreate) (*models.Order, error) {
	order := models.Order{
		ID:              uuid.New().String(),
		Items:           req.Items,
		TotalAmount:     *req.TotalAmount,
		CustomerName:    *req.CustomerName,
		CustomerPhone:   *req.CustomerPhone,
		CustomerAddress: *req.CustomerAddress,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns all orders.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}

// GetOrder returns an order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}
