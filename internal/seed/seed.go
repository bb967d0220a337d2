// Package seed holds the fixed sample catalog inserted by the one-time
// bootstrap endpoint.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/orderfood/storefront-api/internal/models"
)

type sample struct {
	name        string
	description string
	price       float64
	category    string
	imageURL    string
}

var samples = []sample{
	{
		name:        "Chicken Biryani",
		description: "Aromatic basmati rice cooked with tender chicken pieces and traditional spices",
		price:       12.99,
		category:    "biryani",
		imageURL:    "https://images.unsplash.com/photo-1701579231305-d84d8af9a3fd?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwxfHxiaXJ5YW5pfGVufDB8fHx8MTc1MzUyNDQ1Mnww&ixlib=rb-4.1.0&q=85",
	},
	{
		name:        "Mutton Biryani",
		description: "Premium mutton biryani with fragrant spices and long grain basmati rice",
		price:       15.99,
		category:    "biryani",
		imageURL:    "https://images.unsplash.com/photo-1589302168068-964664d93dc0?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwzfHxiaXJ5YW5pfGVufDB8fHx8MTc1MzUyNDQ1Mnww&ixlib=rb-4.1.0&q=85",
	},
	{
		name:        "Margherita Pizza",
		description: "Classic pizza with fresh tomatoes, mozzarella cheese, and basil",
		price:       8.99,
		category:    "pizza",
		imageURL:    "https://images.unsplash.com/photo-1700513971573-4f941ab7d282?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzR8MHwxfHNlYXJjaHwxfHxwaXp6YSUyMGJ1cmdlcnxlbnwwfHx8b3JhbmdlfDE3NTM1MjQwNjZ8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		name:        "Pepperoni Pizza",
		description: "Delicious pizza topped with pepperoni and melted cheese",
		price:       10.99,
		category:    "pizza",
		imageURL:    "https://images.unsplash.com/photo-1700513971573-4f941ab7d282?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzR8MHwxfHNlYXJjaHwxfHxwaXp6YSUyMGJ1cmdlcnxlbnwwfHx8b3JhbmdlfDE3NTM1MjQwNjZ8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		name:        "Classic Burger",
		description: "Juicy beef patty with lettuce, tomato, onion, and special sauce",
		price:       6.99,
		category:    "burger",
		imageURL:    "https://images.unsplash.com/photo-1648580852350-3098af89f110?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzR8MHwxfHNlYXJjaHwyfHxwaXp6YSUyMGJ1cmdlcnxlbnwwfHx8b3JhbmdlfDE3NTM1MjQwNjZ8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		name:        "Cheese Burger",
		description: "Classic burger with extra melted cheese and crispy vegetables",
		price:       7.99,
		category:    "burger",
		imageURL:    "https://images.unsplash.com/photo-1648580852350-3098af89f110?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2NzR8MHwxfHNlYXJjaHwyfHxwaXp6YSUyMGJ1cmdlcnxlbnwwfHx8b3JhbmdlfDE3NTM1MjQwNjZ8MA&ixlib=rb-4.1.0&q=85",
	},
	{
		name:        "Potato Chips",
		description: "Crispy golden potato chips with sea salt",
		price:       2.99,
		category:    "snacks",
		imageURL:    "https://images.pexels.com/photos/8858693/pexels-photo-8858693.jpeg",
	},
	{
		name:        "Fresh Bananas",
		description: "Ripe yellow bananas, perfect for a healthy snack",
		price:       1.99,
		category:    "groceries",
		imageURL:    "https://images.pexels.com/photos/1343537/pexels-photo-1343537.jpeg",
	},
}

// Products returns the sample catalog with fresh ids and creation timestamps.
func Products() []models.Product {
	now := time.Now().UTC()
	products := make([]models.Product, 0, len(samples))
	for _, s := range samples {
		products = append(products, models.Product{
			ID:          uuid.New().String(),
			Name:        s.name,
			Description: s.description,
			Price:       s.price,
			Category:    s.category,
			ImageURL:    s.imageURL,
			InStock:     true,
			CreatedAt:   now,
		})
	}
	return products
}
