package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// Tope de productos en el ranking.
const maxTopProducts = 20

// StatsUseCase agregaciones de solo lectura para los dashboards. Siempre
// calcula sobre la economía fotografiada de cada venta, nunca sobre el precio
// vigente del producto.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// SalesByMonth unidades vendidas por mes del año dado; meses sin ventas en 0.
func (uc *StatsUseCase) SalesByMonth(ctx context.Context, year int) (*dto.SalesByMonthResponse, error) {
	rows, err := uc.repo.GetSalesByMonth(ctx, year)
	if err != nil {
		return nil, err
	}
	data := make([]int64, 12)
	for _, r := range rows {
		if r.Month >= 1 && r.Month <= 12 {
			data[r.Month-1] = r.Total
		}
	}
	return &dto.SalesByMonthResponse{Year: year, Sales: data}, nil
}

// ProfitByMonth ingreso y utilidad por mes (unit_price*qty y
// (unit_price-unit_cost)*qty), opcionalmente filtrado por vendedor.
func (uc *StatsUseCase) ProfitByMonth(ctx context.Context, year int, soldBy string) (*dto.ProfitByMonthResponse, error) {
	rows, err := uc.repo.GetProfitByMonth(ctx, year, soldBy)
	if err != nil {
		return nil, err
	}
	revenue := make([]decimal.Decimal, 12)
	profit := make([]decimal.Decimal, 12)
	for i := range revenue {
		revenue[i] = decimal.Zero
		profit[i] = decimal.Zero
	}
	for _, r := range rows {
		if r.Month >= 1 && r.Month <= 12 {
			revenue[r.Month-1] = r.Revenue.Round(2)
			profit[r.Month-1] = r.Profit.Round(2)
		}
	}
	return &dto.ProfitByMonthResponse{Year: year, Revenue: revenue, Profit: profit}, nil
}

// TopProducts ranking por unidades vendidas, descendente. Default 5, tope 20.
func (uc *StatsUseCase) TopProducts(ctx context.Context, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > maxTopProducts {
		limit = maxTopProducts
	}
	rows, err := uc.repo.GetTopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{ProductID: r.ProductID, Name: r.Name, TotalSold: r.TotalSold})
	}
	return out, nil
}

// SalesPerUser unidades vendidas por usuario, descendente.
func (uc *StatsUseCase) SalesPerUser(ctx context.Context) ([]dto.SalesPerUserDTO, error) {
	rows, err := uc.repo.GetSalesPerUser(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesPerUserDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesPerUserDTO{UserID: r.UserID, Username: r.Username, TotalSales: r.TotalSales})
	}
	return out, nil
}

// RoleBreakdown usuarios por rol.
func (uc *StatsUseCase) RoleBreakdown(ctx context.Context) ([]dto.RoleBreakdownDTO, error) {
	rows, err := uc.repo.GetRoleBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleBreakdownDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RoleBreakdownDTO{Role: r.Role, Count: r.Count})
	}
	return out, nil
}
