package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// ReorderLevel es puntero para distinguir "no enviado" (default 5) de un 0 explícito.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	SKU          string          `json:"sku,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel *int64          `json:"reorderLevel,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
}

// UpdateProductRequest parche parcial de un producto; solo los campos presentes se aplican.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	SKU          *string          `json:"sku,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Quantity     *int64           `json:"quantity,omitempty"`
	ReorderLevel *int64           `json:"reorderLevel,omitempty"`
	ImageURL     *string          `json:"imageUrl,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku,omitempty"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorderLevel"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
