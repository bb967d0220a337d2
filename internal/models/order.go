package models

import "time"

// OrderStatusPending is the status assigned to every new order.
// No endpoint transitions an order out of this status.
const OrderStatusPending = "pending"

// OrderItem is a single line of an order. Product fields are denormalized
// copies captured at order time so later catalog changes do not retroactively
// alter historical orders. product_id is not checked against the catalog.
type OrderItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	ProductName string  `json:"product_name" bson:"product_name"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
	ImageURL    string  `json:"image_url" bson:"image_url"`
}

// Order represents a placed order. total_amount is client-supplied and is
// never recomputed against the item prices.
type Order struct {
	ID              string      `json:"id" bson:"id"`
	Items           []OrderItem `json:"items" bson:"items"`
	TotalAmount     float64     `json:"total_amount" bson:"total_amount"`
	CustomerName    string      `json:"customer_name" bson:"customer_name"`
	CustomerPhone   string      `json:"customer_phone" bson:"customer_phone"`
	CustomerAddress string      `json:"customer_address" bson:"customer_address"`
	Status          string      `json:"status" bson:"status"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
}

// OrderCreate is the payload for placing an order. An empty items array is
// accepted; only an absent field fails validation.
type OrderCreate struct {
	Items           []OrderItem `json:"items" validate:"required"`
	TotalAmount     *float64    `json:"total_amount" validate:"required"`
	CustomerName    *string     `json:"customer_name" validate:"required"`
	CustomerPhone   *string     `json:"customer_phone" validate:"required"`
	CustomerAddress *string     `json:"customer_address" validate:"required"`
}
