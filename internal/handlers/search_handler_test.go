package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/orderfood/storefront-api/internal/models"
	"github.com/orderfood/storefront-api/internal/repository"
	"github.com/orderfood/storefront-api/internal/service"
	"github.com/orderfood/storefront-api/pkg/logger"
)

func newSearchRouter(t *testing.T) (*chi.Mux, *service.CatalogService) {
	t.Helper()

	repo := repository.NewInMemoryProductRepository(1000)
	svc := service.NewCatalogService(repo)
	handler := NewSearchHandler(svc, logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/search", handler.SearchProducts)

	return r, svc
}

func searchProducts(t *testing.T, r *chi.Mux, rawQuery string) []models.Product {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/search"+rawQuery, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return products
}

func TestSearchProducts(t *testing.T) {
	// Setup
	r, svc := newSearchRouter(t)
	createTestProduct(t, svc, "Margherita Pizza", "pizza", 8.99)
	createTestProduct(t, svc, "Pepperoni Pizza", "pizza", 10.99)
	createTestProduct(t, svc, "Chicken Biryani", "biryani", 12.99)
	createTestProduct(t, svc, "Potato Chips", "snacks", 2.99)

	tests := []struct {
		name     string
		rawQuery string
		want     int
	}{
		{"substring of name", "?query=pizza", 2},
		{"substring of category only", "?query=snack", 1},
		{"partial word", "?query=biry", 1},
		{"no matches returns empty array", "?query=nonexistentfood123", 0},
		{"empty query matches everything", "?query=", 4},
		{"missing query matches everything", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Execute
			products := searchProducts(t, r, tt.rawQuery)

			// Assert
			if len(products) != tt.want {
				t.Errorf("expected %d products, got %d", tt.want, len(products))
			}
		})
	}
}

func TestSearchProducts_CaseInsensitive(t *testing.T) {
	// Setup
	r, svc := newSearchRouter(t)
	createTestProduct(t, svc, "Margherita Pizza", "pizza", 8.99)
	createTestProduct(t, svc, "Pepperoni Pizza", "pizza", 10.99)

	// Execute: the same term in different casings must match identically
	base := searchProducts(t, r, "?query=pizza")
	for _, variant := range []string{"?query=PIZZA", "?query=Pizza", "?query=pIzZa"} {
		products := searchProducts(t, r, variant)

		// Assert
		if len(products) != len(base) {
			t.Fatalf("query %s returned %d products, want %d", variant, len(products), len(base))
		}
		for i := range products {
			if products[i].ID != base[i].ID {
				t.Errorf("query %s result %d differs from lowercase query", variant, i)
			}
		}
	}
}

func TestSearchProducts_MatchesDescription(t *testing.T) {
	// Setup
	r, svc := newSearchRouter(t)

	name := "Fresh Bananas"
	desc := "Ripe yellow bananas, perfect for a healthy snack"
	price := 1.99
	category := "groceries"
	imageURL := "https://example.com/bananas.jpg"
	if _, err := svc.CreateProduct(context.Background(), models.ProductCreate{
		Name:        &name,
		Description: &desc,
		Price:       &price,
		Category:    &category,
		ImageURL:    &imageURL,
	}); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	// Execute: "healthy" only appears in the description
	products := searchProducts(t, r, "?query=healthy")

	// Assert
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Name != "Fresh Bananas" {
		t.Errorf("expected 'Fresh Bananas', got %s", products[0].Name)
	}
}
