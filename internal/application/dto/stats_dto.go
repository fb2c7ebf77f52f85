package dto

import "github.com/shopspring/decimal"

// SalesByMonthResponse unidades vendidas por mes calendario (índice 0 = enero).
type SalesByMonthResponse struct {
	Year  int     `json:"year"`
	Sales []int64 `json:"sales"` // siempre 12 posiciones
}

// ProfitByMonthResponse ingreso y utilidad por mes, sobre la economía
// fotografiada de cada venta. Redondeado a 2 decimales.
type ProfitByMonthResponse struct {
	Year    int               `json:"year"`
	Revenue []decimal.Decimal `json:"revenue"` // siempre 12 posiciones
	Profit  []decimal.Decimal `json:"profit"`  // siempre 12 posiciones
}

// TopProductDTO producto rankeado por unidades vendidas.
type TopProductDTO struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	TotalSold int64  `json:"totalSold"`
}

// SalesPerUserDTO unidades vendidas por usuario, descendente.
type SalesPerUserDTO struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	TotalSales int64  `json:"totalSales"`
}

// RoleBreakdownDTO usuarios por rol.
type RoleBreakdownDTO struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}
