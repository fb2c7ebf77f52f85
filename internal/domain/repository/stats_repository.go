package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlyTotal fila cruda de unidades vendidas: mes calendario 1..12 y total.
type MonthlyTotal struct {
	Month int
	Total int64
}

// MonthlyMoney fila cruda de economía mensual, calculada sobre la foto
// unit_price/unit_cost de cada venta (no sobre el precio vigente del producto).
type MonthlyMoney struct {
	Month   int
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// TopProductResult producto rankeado por unidades vendidas.
type TopProductResult struct {
	ProductID string
	Name      string
	TotalSold int64
}

// SalesPerUserResult unidades vendidas acumuladas por usuario.
type SalesPerUserResult struct {
	UserID     string
	Username   string
	TotalSales int64
}

// RoleCount usuarios por rol.
type RoleCount struct {
	Role  string
	Count int
}

// StatsRepository define las consultas de lectura para los dashboards.
// Las implementaciones son read-only: repetir una consulta entre ventas
// devuelve agregados idénticos.
type StatsRepository interface {
	GetSalesByMonth(ctx context.Context, year int) ([]MonthlyTotal, error)
	// GetProfitByMonth acepta soldBy vacío para agregar sobre todos los usuarios.
	GetProfitByMonth(ctx context.Context, year int, soldBy string) ([]MonthlyMoney, error)
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	GetSalesPerUser(ctx context.Context) ([]SalesPerUserResult, error)
	GetRoleBreakdown(ctx context.Context) ([]RoleCount, error)
}
