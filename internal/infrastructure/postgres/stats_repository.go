package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los dashboards. Todas agregan sobre
// la foto unit_price/unit_cost de cada venta, así los totales históricos no se
// mueven cuando el catálogo cambia de precio.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// GetSalesByMonth suma unidades vendidas por mes calendario del año dado.
func (r *StatsRepo) GetSalesByMonth(ctx context.Context, year int) ([]repository.MonthlyTotal, error) {
	const query = `
	SELECT EXTRACT(MONTH FROM date)::int AS month,
	       COALESCE(SUM(quantity), 0)    AS total
	FROM sales
	WHERE date >= make_date($1, 1, 1) AND date < make_date($1 + 1, 1, 1)
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("stats.GetSalesByMonth: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyTotal
	for rows.Next() {
		var row repository.MonthlyTotal
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("stats.GetSalesByMonth scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetProfitByMonth suma ingreso (unit_price*qty) y utilidad
// ((unit_price-unit_cost)*qty) por mes; soldBy vacío agrega todos los usuarios.
func (r *StatsRepo) GetProfitByMonth(ctx context.Context, year int, soldBy string) ([]repository.MonthlyMoney, error) {
	query := `
	SELECT EXTRACT(MONTH FROM date)::int                          AS month,
	       COALESCE(SUM(unit_price * quantity), 0)                AS revenue,
	       COALESCE(SUM((unit_price - unit_cost) * quantity), 0)  AS profit
	FROM sales
	WHERE date >= make_date($1, 1, 1) AND date < make_date($1 + 1, 1, 1)`
	args := []any{year}
	if soldBy != "" {
		query += ` AND sold_by = $2`
		args = append(args, soldBy)
	}
	query += `
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats.GetProfitByMonth: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyMoney
	for rows.Next() {
		var row repository.MonthlyMoney
		if err := rows.Scan(&row.Month, &row.Revenue, &row.Profit); err != nil {
			return nil, fmt.Errorf("stats.GetProfitByMonth scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts rankea productos por unidades vendidas, descendente; el
// desempate por product_id da un orden estable. Productos borrados aparecen
// con el placeholder.
func (r *StatsRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT s.product_id,
	       COALESCE(p.name, '` + deletedProductName + `') AS name,
	       SUM(s.quantity)                                AS total_sold
	FROM sales s
	LEFT JOIN products p ON p.id = s.product_id
	GROUP BY s.product_id, p.name
	ORDER BY total_sold DESC, s.product_id
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("stats.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesPerUser suma unidades vendidas por usuario, descendente.
func (r *StatsRepo) GetSalesPerUser(ctx context.Context) ([]repository.SalesPerUserResult, error) {
	const query = `
	SELECT s.sold_by,
	       COALESCE(u.username, '-') AS username,
	       SUM(s.quantity)           AS total_sales
	FROM sales s
	LEFT JOIN users u ON u.id = s.sold_by
	GROUP BY s.sold_by, u.username
	ORDER BY total_sales DESC, s.sold_by`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.GetSalesPerUser: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesPerUserResult
	for rows.Next() {
		var row repository.SalesPerUserResult
		if err := rows.Scan(&row.UserID, &row.Username, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("stats.GetSalesPerUser scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetRoleBreakdown cuenta usuarios por rol.
func (r *StatsRepo) GetRoleBreakdown(ctx context.Context) ([]repository.RoleCount, error) {
	const query = `SELECT role, COUNT(*) FROM users GROUP BY role ORDER BY role`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.GetRoleBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.RoleCount
	for rows.Next() {
		var row repository.RoleCount
		if err := rows.Scan(&row.Role, &row.Count); err != nil {
			return nil, fmt.Errorf("stats.GetRoleBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
