package models

import "time"

// Product represents a food product in the catalog.
// The id field is an opaque UUID stored in its own document field (not the
// Mongo _id) so identifiers survive export/import of the collection.
type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	InStock     bool      `json:"in_stock" bson:"in_stock"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ProductCreate is the payload for creating a product.
// Required fields are pointers so presence can be checked without rejecting
// explicit zero values: a price of 0 or an empty string is accepted as-is,
// only a missing field fails validation.
type ProductCreate struct {
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	ImageURL    *string  `json:"image_url" validate:"required"`
	InStock     *bool    `json:"in_stock"`
}
