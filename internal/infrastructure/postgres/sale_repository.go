package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// Placeholder de presentación cuando el producto de una venta ya no existe.
const deletedProductName = "(producto eliminado)"

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta con su foto de precio/costo.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, unit_price, unit_cost, sold_by, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.UnitPrice, sale.UnitCost,
		sale.SoldBy, sale.Date,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, unit_price, unit_cost, sold_by, date
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.UnitCost, &s.SoldBy, &s.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListWithRefs lista ventas filtradas, más nueva primero, con nombre de
// producto y vendedor. LEFT JOIN: productos o usuarios borrados caen a un
// placeholder sin ocultar la venta.
func (r *SaleRepo) ListWithRefs(filter repository.SaleFilter) ([]repository.SaleWithRefs, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity, s.unit_price, s.unit_cost, s.sold_by, s.date,
		       COALESCE(p.name, '` + deletedProductName + `'), COALESCE(u.username, '-')
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		LEFT JOIN users    u ON u.id = s.sold_by`

	var args []any
	var conds []string
	if filter.SoldBy != "" {
		args = append(args, filter.SoldBy)
		conds = append(conds, "s.sold_by = $"+strconv.Itoa(len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conds = append(conds, "s.date >= $"+strconv.Itoa(len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conds = append(conds, "s.date <= $"+strconv.Itoa(len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += "\n\t\tWHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += "\n\t\tORDER BY s.date DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleWithRefs
	for rows.Next() {
		var s repository.SaleWithRefs
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.UnitPrice, &s.UnitCost,
			&s.SoldBy, &s.Date, &s.ProductName, &s.SoldByName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete borra una venta (corrección de admin). No toca el stock.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
