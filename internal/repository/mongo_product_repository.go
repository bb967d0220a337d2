package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orderfood/storefront-api/internal/models"
)

// MongoProductRepository implements ProductRepository against the "products"
// collection.
type MongoProductRepository struct {
	collection *mongo.Collection
	limit      int64
}

// NewMongoProductRepository creates a product repository. limit caps every
// list-returning query in a single response.
func NewMongoProductRepository(db *mongo.Database, limit int64) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
		limit:      limit,
	}
}

// GetAll returns all products up to the configured limit.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// GetByID returns the product with the given id, or ErrProductNotFound.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

// GetByCategory returns all products whose category matches exactly,
// case-sensitive as stored. An empty result is not an error.
func (r *MongoProductRepository) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category": category})
}

// Search returns all products where name, description or category contains
// query as a case-insensitive substring. The query is quoted before being
// handed to the regex engine, so the match is a plain substring match and an
// empty query matches every document.
func (r *MongoProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
		bson.M{"category": pattern},
	}}
	return r.find(ctx, filter)
}

// Insert persists a single product document.
func (r *MongoProductRepository) Insert(ctx context.Context, product models.Product) error {
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// InsertMany persists a batch of product documents.
func (r *MongoProductRepository) InsertMany(ctx context.Context, products []models.Product) error {
	docs := make([]interface{}, 0, len(products))
	for _, product := range products {
		docs = append(docs, product)
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}

// Any reports whether the collection holds at least one product.
func (r *MongoProductRepository) Any(ctx context.Context) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	return count > 0, nil
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(r.limit))
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
