package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea {productId, quantity} dentro de una venta.
type SaleItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// CreateSaleRequest body para POST /api/sales. Admite dos formas equivalentes:
// un solo ítem (productId + quantity al tope) o varias líneas en items. La
// forma simple es azúcar para items de un elemento; el motor normaliza ambas
// a una sola lista canónica antes de validar.
type CreateSaleRequest struct {
	SoldBy    string            `json:"soldBy"`
	ProductID string            `json:"productId,omitempty"`
	Quantity  int64             `json:"quantity,omitempty"`
	Items     []SaleItemRequest `json:"items,omitempty"`
}

// SaleResponse venta creada, enriquecida con campos de presentación.
// UnitPrice/UnitCost son la foto tomada al vender, no el precio vigente.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	SoldBy      string          `json:"soldBy"`
	SoldByName  string          `json:"soldByName"`
	Date        time.Time       `json:"date"`
}

// CreateSaleResponse payload de éxito de una venta.
type CreateSaleResponse struct {
	Message string         `json:"message"`
	Sales   []SaleResponse `json:"sales"`
}

// SaleListResponse listado de ventas con filtros aplicados.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
