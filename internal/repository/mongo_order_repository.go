package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orderfood/storefront-api/internal/models"
)

// MongoOrderRepository implements OrderRepository against the "orders"
// collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
	limit      int64
}

// NewMongoOrderRepository creates an order repository with the given list
// result cap.
func NewMongoOrderRepository(db *mongo.Database, limit int64) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
		limit:      limit,
	}
}

// GetAll returns all orders up to the configured limit.
func (r *MongoOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(r.limit))
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// GetByID returns the order with the given id, or ErrOrderNotFound.
func (r *MongoOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &order, nil
}

// Insert persists a single order document.
func (r *MongoOrderRepository) Insert(ctx context.Context, order models.Order) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}
