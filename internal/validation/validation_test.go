package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/orderfood/storefront-api/internal/models"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func TestRequiredFields_ProductCreate(t *testing.T) {
	policy := NewRequiredFields()

	valid := models.ProductCreate{
		Name:        strPtr("Chicken Biryani"),
		Description: strPtr("Aromatic"),
		Price:       f64Ptr(12.99),
		Category:    strPtr("biryani"),
		ImageURL:    strPtr("https://example.com/b.jpg"),
	}

	tests := []struct {
		name    string
		mutate  func(*models.ProductCreate)
		wantErr string
	}{
		{"complete payload", func(p *models.ProductCreate) {}, ""},
		{"zero price passes", func(p *models.ProductCreate) { p.Price = f64Ptr(0) }, ""},
		{"empty strings pass", func(p *models.ProductCreate) {
			p.Name = strPtr("")
			p.Description = strPtr("")
		}, ""},
		{"missing name", func(p *models.ProductCreate) { p.Name = nil }, "name is required"},
		{"missing price", func(p *models.ProductCreate) { p.Price = nil }, "price is required"},
		{"missing image_url", func(p *models.ProductCreate) { p.ImageURL = nil }, "image_url is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := valid
			tt.mutate(&payload)

			err := policy.Validate(payload)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected payload to pass, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestRequiredFields_OrderCreate(t *testing.T) {
	policy := NewRequiredFields()

	tests := []struct {
		name    string
		payload models.OrderCreate
		wantOK  bool
	}{
		{
			name: "empty items array passes",
			payload: models.OrderCreate{
				Items:           []models.OrderItem{},
				TotalAmount:     f64Ptr(0),
				CustomerName:    strPtr(""),
				CustomerPhone:   strPtr(""),
				CustomerAddress: strPtr(""),
			},
			wantOK: true,
		},
		{
			name: "nil items fails",
			payload: models.OrderCreate{
				TotalAmount:     f64Ptr(10),
				CustomerName:    strPtr("x"),
				CustomerPhone:   strPtr("y"),
				CustomerAddress: strPtr("z"),
			},
			wantOK: false,
		},
		{
			name: "missing customer_address fails",
			payload: models.OrderCreate{
				Items:         []models.OrderItem{},
				TotalAmount:   f64Ptr(10),
				CustomerName:  strPtr("x"),
				CustomerPhone: strPtr("y"),
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.payload)
			if tt.wantOK && err != nil {
				t.Errorf("expected payload to pass, got %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestError_MessageListsAllFields(t *testing.T) {
	policy := NewRequiredFields()

	err := policy.Validate(models.ProductCreate{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, field := range []string{"name", "description", "price", "category", "image_url"} {
		if !strings.Contains(msg, field+" is required") {
			t.Errorf("error %q missing field %s", msg, field)
		}
	}
}
